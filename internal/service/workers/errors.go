package workers

import (
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrWorkerNotFound возвращается, когда исполнитель не найден
	ErrWorkerNotFound = fmt.Errorf("workers: %w: worker not found", domain.ErrNotFound)

	// ErrInvalidCategory возвращается для категории вне фиксированного набора
	ErrInvalidCategory = fmt.Errorf("workers: %w: unknown service category", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("workers: internal error")
)
