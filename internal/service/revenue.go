package service

import (
	"context"
	"time"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
	"github.com/500AN/rental-system/internal/utils"
)

const recentRevenueLimit = 100

type revenueService struct {
	revenueRepo repository.RevenueRepository
}

func NewRevenueService(revenueRepo repository.RevenueRepository) RevenueService {
	return &revenueService{revenueRepo: revenueRepo}
}

func (s *revenueService) DailyReport(ctx context.Context, date string) (*domain.DailyRevenueReport, error) {
	if date == "" {
		date = utils.Today()
	}
	return s.revenueRepo.Daily(ctx, date)
}

func (s *revenueService) MonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyRevenueReport, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return s.revenueRepo.Monthly(ctx, year, month)
}

func (s *revenueService) RecentLogs(ctx context.Context) ([]domain.RevenueLog, error) {
	return s.revenueRepo.ListRecent(ctx, recentRevenueLimit)
}
