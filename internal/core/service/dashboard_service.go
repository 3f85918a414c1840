package service

import (
	"context"
	"fmt"
	"time"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

const (
	chartDays        = 7
	recentSalesLimit = 5
	topStoresLimit   = 3
)

type DashboardService struct {
	repo ports.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo ports.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// Stats assembles the dashboard for the current server-local day.
func (s *DashboardService) Stats(ctx context.Context) (*domain.Dashboard, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.repo.Stats(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	chart, err := s.repo.SalesChart(ctx, today.AddDate(0, 0, -chartDays))
	if err != nil {
		return nil, fmt.Errorf("dashboard chart: %w", err)
	}
	recent, err := s.repo.RecentTransactions(ctx, recentSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard recent transactions: %w", err)
	}
	top, err := s.repo.TopStores(ctx, today, topStoresLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard top stores: %w", err)
	}

	return &domain.Dashboard{
		Stats:              stats,
		TopStores:          top,
		SalesChart:         chart,
		RecentTransactions: recent,
	}, nil
}
