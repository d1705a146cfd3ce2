package analytics

import (
	"context"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

// Порог рейтинга, ниже которого исполнитель помечается предупреждением
const warningRatingThreshold = 3.5

// BookingRegistry интерфейс реестра бронирований
type BookingRegistry interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// WorkerRegistry интерфейс реестра исполнителей
type WorkerRegistry interface {
	List(ctx context.Context) ([]*domain.WorkerProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CategoryCount количество бронирований в категории
type CategoryCount struct {
	Category string `json:"category"`
	Bookings int    `json:"bookings"`
}

// StatusCount количество бронирований в статусе
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// LeaderboardEntry строка рейтинга исполнителей
type LeaderboardEntry struct {
	WorkerID      string  `json:"workerId"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalJobs     int     `json:"totalJobs"`
	Rating        float64 `json:"rating"`
	TotalEarnings float64 `json:"totalEarnings"`
	Flag          string  `json:"flag"` // "Good" или "Warning"
}

// PlatformStats агрегированная аналитика платформы
type PlatformStats struct {
	TotalBookings      int                `json:"totalBookings"`
	ActiveWorkers      int                `json:"activeWorkers"`
	BookingsByCategory []CategoryCount    `json:"bookingsByCategory"`
	StatusBreakdown    []StatusCount      `json:"statusBreakdown"`
	Leaderboard        []LeaderboardEntry `json:"leaderboard"`
}

// Service сервис аналитики. Доступен только администратору и читает
// реестры без какой-либо мутации.
type Service struct {
	bookingRepo BookingRegistry
	workerRepo  WorkerRegistry
	logger      Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(bookingRepo BookingRegistry, workerRepo WorkerRegistry, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		workerRepo:  workerRepo,
		logger:      logger,
	}
}

// PlatformStats возвращает сводную аналитику платформы.
// Требует право CapViewAnalytics (только администратор).
func (s *Service) PlatformStats(ctx context.Context, actor domain.Actor) (*PlatformStats, error) {
	if !domain.HasCapability(actor.Role, domain.CapViewAnalytics) {
		s.logger.Warn("PlatformStats: access denied for actor=%s role=%s", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("PlatformStats: booking registry error: %v", err)
		return nil, fmt.Errorf("%w: PlatformStats - booking registry error: %v", ErrInternal, err)
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		s.logger.Error("PlatformStats: worker registry error: %v", err)
		return nil, fmt.Errorf("%w: PlatformStats - worker registry error: %v", ErrInternal, err)
	}

	stats := &PlatformStats{
		TotalBookings: len(bookings),
		ActiveWorkers: len(workers),
	}

	// Бронирования по категориям, в фиксированном порядке категорий
	for _, cat := range domain.ServiceCategories {
		count := 0
		for _, b := range bookings {
			if b.Category == cat.Name {
				count++
			}
		}
		stats.BookingsByCategory = append(stats.BookingsByCategory, CategoryCount{
			Category: cat.Name,
			Bookings: count,
		})
	}

	// Разбивка по статусам
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		count := 0
		for _, b := range bookings {
			if b.Status == status {
				count++
			}
		}
		stats.StatusBreakdown = append(stats.StatusBreakdown, StatusCount{
			Status: string(status),
			Count:  count,
		})
	}

	// Рейтинг исполнителей в порядке реестра
	for _, w := range workers {
		flag := "Good"
		if w.Rating < warningRatingThreshold {
			flag = "Warning"
		}
		stats.Leaderboard = append(stats.Leaderboard, LeaderboardEntry{
			WorkerID:      w.ID,
			Name:          w.Name,
			Category:      w.Category,
			TotalJobs:     w.TotalJobs,
			Rating:        w.Rating,
			TotalEarnings: w.TotalEarnings,
			Flag:          flag,
		})
	}

	s.logger.Info("PlatformStats: %d bookings, %d workers", stats.TotalBookings, stats.ActiveWorkers)
	return stats, nil
}
