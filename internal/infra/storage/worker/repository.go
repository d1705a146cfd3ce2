package worker

import (
	"context"
	"sync"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Repository in-memory реестр исполнителей.
// Профили сидируются при старте; порядок вставки сохраняется
// и используется при фильтрации по категории.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.WorkerProfile
	order []string
}

// NewRepository создает пустой реестр исполнителей
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*domain.WorkerProfile),
	}
}

// Add добавляет профиль исполнителя в реестр
func (r *Repository) Add(_ context.Context, w *domain.WorkerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[w.ID]; exists {
		return ErrDuplicateID
	}

	stored := *w
	r.byID[w.ID] = &stored
	r.order = append(r.order, w.ID)
	return nil
}

// GetByID возвращает профиль исполнителя по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.WorkerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byID[id]
	if !ok {
		return nil, ErrWorkerNotFound
	}
	c := *w
	return &c, nil
}

// List возвращает все профили в порядке вставки
func (r *Repository) List(_ context.Context) ([]*domain.WorkerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.WorkerProfile, 0, len(r.order))
	for _, id := range r.order {
		c := *r.byID[id]
		result = append(result, &c)
	}
	return result, nil
}

// FindByCategory возвращает профили с указанной категорией,
// сохраняя порядок вставки
func (r *Repository) FindByCategory(_ context.Context, category string) ([]*domain.WorkerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.WorkerProfile
	for _, id := range r.order {
		if w := r.byID[id]; w.Category == category {
			c := *w
			result = append(result, &c)
		}
	}
	return result, nil
}

// SetAvailability переключает флаг доступности исполнителя
func (r *Repository) SetAvailability(_ context.Context, id string, available bool) (*domain.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.byID[id]
	if !ok {
		return nil, ErrWorkerNotFound
	}
	w.IsAvailable = available
	c := *w
	return &c, nil
}

// RecordCompletedJob увеличивает счетчики выполненных работ и заработка.
// Счетчики монотонно неубывающие: отрицательный заработок не применяется.
func (r *Repository) RecordCompletedJob(_ context.Context, id string, earnings float64) (*domain.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.byID[id]
	if !ok {
		return nil, ErrWorkerNotFound
	}

	w.TotalJobs++
	if earnings > 0 {
		w.TotalEarnings += earnings
	}
	c := *w
	return &c, nil
}
