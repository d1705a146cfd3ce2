package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Repository in-memory реестр бронирований.
// Всё состояние живет в памяти процесса: записи хранятся в map по ID,
// порядок вставки сохраняется отдельным срезом и используется при листинге.
// Mutex нужен только потому, что HTTP-обработчики выполняются конкурентно.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Booking
	order []string
}

// NewRepository создает пустой реестр бронирований
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*domain.Booking),
	}
}

// Create добавляет новое бронирование в реестр.
// ID должен быть уникальным; коллизия возвращает ErrDuplicateID.
func (r *Repository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := clone(b)
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return clone(stored), nil
}

// Seed добавляет заранее подготовленное бронирование, сохраняя его поля
// (статус, оценку, временные метки) как есть. Используется только при старте.
func (r *Repository) Seed(b *domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; exists {
		return
	}
	r.byID[b.ID] = clone(b)
	r.order = append(r.order, b.ID)
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return clone(b), nil
}

// List возвращает все бронирования в порядке вставки
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, clone(r.byID[id]))
	}
	return result, nil
}

// Assign назначает исполнителя на бронирование и переводит его в ACCEPTED.
// Назначение и смена статуса выполняются под блокировкой одним шагом:
// промежуточное состояние (исполнитель есть, статус PENDING) не наблюдаемо.
// Повторный вызов для уже назначенного бронирования возвращает ErrAlreadyAssigned.
func (r *Repository) Assign(_ context.Context, id string, workerID string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.IsAssigned() {
		return nil, ErrAlreadyAssigned
	}
	if b.Status != domain.StatusPending {
		return nil, ErrNotPending
	}

	wid := workerID
	b.WorkerID = &wid
	b.Status = domain.StatusAccepted
	b.UpdatedAt = time.Now()

	return clone(b), nil
}

// Cancel переводит бронирование в терминальный статус CANCELLED.
// Допустимо только из статуса PENDING.
func (r *Repository) Cancel(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !b.CanBeCancelled() {
		return nil, ErrNotPending
	}

	b.Status = domain.StatusCancelled
	b.UpdatedAt = time.Now()

	return clone(b), nil
}

// UpdateStatus выполняет переход статуса с проверкой по графу переходов
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !domain.CanTransition(b.Status, status) {
		return nil, ErrInvalidTransition
	}

	b.Status = status
	b.UpdatedAt = time.Now()

	return clone(b), nil
}

// SetRating устанавливает оценку и отзыв завершенного бронирования.
// Оценка устанавливается ровно один раз.
func (r *Repository) SetRating(_ context.Context, id string, rating float64, review string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.Status != domain.StatusCompleted {
		return nil, ErrNotCompleted
	}
	if b.Rating != nil {
		return nil, ErrAlreadyRated
	}

	b.Rating = &rating
	if review != "" {
		b.Review = &review
	}
	b.UpdatedAt = time.Now()

	return clone(b), nil
}

// clone возвращает независимую копию записи, чтобы вызывающий код
// не мог изменить состояние реестра в обход его методов
func clone(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.WorkerID != nil {
		wid := *b.WorkerID
		c.WorkerID = &wid
	}
	if b.Rating != nil {
		rating := *b.Rating
		c.Rating = &rating
	}
	if b.Review != nil {
		review := *b.Review
		c.Review = &review
	}
	if b.ProductsUsed != nil {
		c.ProductsUsed = make([]domain.ProductUsage, len(b.ProductsUsed))
		copy(c.ProductsUsed, b.ProductsUsed)
	}
	return &c
}
