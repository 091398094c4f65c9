package service

import (
	"context"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type washingService struct {
	washingRepo    repository.WashingRepository
	alertThreshold int
}

func NewWashingService(washingRepo repository.WashingRepository, alertThresholdDays int) WashingService {
	return &washingService{washingRepo: washingRepo, alertThreshold: alertThresholdDays}
}

func (s *washingService) ListWashing(ctx context.Context) ([]domain.WashingItem, error) {
	return s.washingRepo.ListActive(ctx)
}

func (s *washingService) ListWashingAlerts(ctx context.Context) ([]domain.WashingItem, error) {
	return s.washingRepo.ListOverdue(ctx, s.alertThreshold)
}

func (s *washingService) ReturnFromWashing(ctx context.Context, id int64) error {
	return s.washingRepo.MarkReturned(ctx, id)
}

type damageService struct {
	damageRepo repository.DamageRepository
}

func NewDamageService(damageRepo repository.DamageRepository) DamageService {
	return &damageService{damageRepo: damageRepo}
}

func (s *damageService) ListDamaged(ctx context.Context) ([]domain.DamagedItem, error) {
	return s.damageRepo.ListActive(ctx)
}

func (s *damageService) ReportDamage(ctx context.Context, productID int64, quantity int, details string) (*domain.DamagedItem, error) {
	if productID == 0 || quantity <= 0 {
		return nil, apperr.Validation("Product and quantity are required")
	}
	d := &domain.DamagedItem{
		ProductID:     productID,
		Quantity:      quantity,
		DamageDetails: details,
	}
	if err := s.damageRepo.Report(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *damageService) RepairDamaged(ctx context.Context, id int64) error {
	return s.damageRepo.MarkRepaired(ctx, id)
}
