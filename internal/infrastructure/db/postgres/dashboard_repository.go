package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

var _ ports.DashboardRepository = (*DashboardRepository)(nil)

type DashboardRepository struct {
	db DB
}

func NewDashboardRepository(db DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats computes the headline counters for the day starting at dayStart.
func (r *DashboardRepository) Stats(ctx context.Context, dayStart time.Time) (domain.DashboardStats, error) {
	const query = `
		SELECT
		  (SELECT COALESCE(SUM(total_amount), 0)::float8 FROM transactions
		     WHERE transaction_date >= $1 AND transaction_date < $2),
		  (SELECT COUNT(*) FROM transactions
		     WHERE transaction_date >= $1 AND transaction_date < $2),
		  (SELECT COUNT(*) FROM users WHERE status = 'pending'),
		  (SELECT COUNT(*) FROM users WHERE status = 'active'),
		  (SELECT COUNT(*) FROM stores WHERE status = 'active')`

	var s domain.DashboardStats
	err := r.db.QueryRow(ctx, query, dayStart, dayStart.AddDate(0, 0, 1)).
		Scan(&s.SalesToday, &s.TransactionsToday, &s.PendingUsers, &s.ActiveUsers, &s.ActiveStores)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return s, nil
}

func (r *DashboardRepository) SalesChart(ctx context.Context, since time.Time) ([]domain.DailySales, error) {
	const query = `
		SELECT transaction_date::date AS date, SUM(total_amount)::float8 AS total
		FROM transactions
		WHERE transaction_date >= $1
		GROUP BY 1
		ORDER BY 1 ASC`
	return collectAll[domain.DailySales](ctx, r.db, "sales chart", query, since)
}

func (r *DashboardRepository) RecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error) {
	const query = `
		SELECT t.invoice_number, t.cashier_name, t.total_amount::float8 AS total_amount, s.name AS store_name
		FROM transactions t
		LEFT JOIN stores s ON t.store_id = s.id
		ORDER BY t.transaction_date DESC, t.id DESC
		LIMIT $1`
	return collectAll[domain.RecentTransaction](ctx, r.db, "recent transactions", query, limit)
}

// TopStores ranks stores by sales on the day starting at dayStart.
func (r *DashboardRepository) TopStores(ctx context.Context, dayStart time.Time, limit int) ([]domain.StoreSales, error) {
	const query = `
		SELECT s.name, SUM(t.total_amount)::float8 AS total_sales
		FROM transactions t
		JOIN stores s ON t.store_id = s.id
		WHERE t.transaction_date >= $1 AND t.transaction_date < $2
		GROUP BY s.id, s.name
		ORDER BY total_sales DESC
		LIMIT $3`
	return collectAll[domain.StoreSales](ctx, r.db, "top stores", query, dayStart, dayStart.AddDate(0, 0, 1), limit)
}
