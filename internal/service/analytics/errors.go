package analytics

import (
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

var (
	// ErrAccessDenied возвращается, когда у актора нет права на аналитику
	ErrAccessDenied = fmt.Errorf("analytics: %w: analytics is admin-only", domain.ErrPreconditionFailed)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("analytics: internal error")
)
