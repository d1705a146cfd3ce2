package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	workerRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/worker"
)

// Service сервис для работы с реестром исполнителей
type Service struct {
	workerRepo WorkerRegistry
	logger     Logger
}

// NewService создает новый экземпляр сервиса исполнителей
func NewService(workerRepo WorkerRegistry, logger Logger) *Service {
	return &Service{
		workerRepo: workerRepo,
		logger:     logger,
	}
}

// FindByCategory возвращает исполнителей указанной категории,
// сохраняя порядок реестра
func (s *Service) FindByCategory(ctx context.Context, category string) ([]*domain.WorkerProfile, error) {
	s.logger.Info("FindByCategory: category=%s", category)

	if !domain.IsValidCategory(category) {
		s.logger.Warn("FindByCategory: unknown category %q", category)
		return nil, ErrInvalidCategory
	}

	profiles, err := s.workerRepo.FindByCategory(ctx, category)
	if err != nil {
		s.logger.Error("FindByCategory: registry error: %v", err)
		return nil, fmt.Errorf("%w: FindByCategory - registry error: %v", ErrInternal, err)
	}

	s.logger.Info("FindByCategory: found %d workers for category=%s", len(profiles), category)
	return profiles, nil
}

// List возвращает все профили исполнителей
func (s *Service) List(ctx context.Context) ([]*domain.WorkerProfile, error) {
	profiles, err := s.workerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: registry error: %v", err)
		return nil, fmt.Errorf("%w: List - registry error: %v", ErrInternal, err)
	}
	return profiles, nil
}

// SetAvailability переключает доступность собственного профиля исполнителя
func (s *Service) SetAvailability(ctx context.Context, workerID string, available bool) (*domain.WorkerProfile, error) {
	s.logger.Info("SetAvailability: worker=%s available=%t", workerID, available)

	profile, err := s.workerRepo.SetAvailability(ctx, workerID, available)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			s.logger.Warn("SetAvailability: worker %s not found", workerID)
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("SetAvailability: registry error for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: SetAvailability - registry error: %v", ErrInternal, err)
	}

	return profile, nil
}

// CurrentPay возвращает расчетную выплату исполнителя за работу
// по его текущему рейтингу
func (s *Service) CurrentPay(ctx context.Context, workerID string) (float64, error) {
	profile, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			return 0, ErrWorkerNotFound
		}
		return 0, fmt.Errorf("%w: CurrentPay - registry error: %v", ErrInternal, err)
	}

	rating := profile.Rating
	return ComputePay(profile.BaseRate, &rating), nil
}
