package worker

import (
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrWorkerNotFound возвращается, когда исполнитель не найден
	ErrWorkerNotFound = fmt.Errorf("worker.registry: %w: worker not found", domain.ErrNotFound)

	// ErrDuplicateID возвращается при попытке добавить исполнителя с занятым ID
	ErrDuplicateID = fmt.Errorf("worker.registry: %w: worker id already exists", domain.ErrInvalidInput)
)
