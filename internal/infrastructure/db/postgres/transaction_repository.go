package postgres

import (
	"context"
	"fmt"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

var transactionColumns = Columns{
	Search: []string{"t.invoice_number", "t.cashier_name", "t.payment_method"},
	Store:  "t.store_id",
	Region: "s.region_id",
	Date:   "t.transaction_date",
}

const (
	transactionSelect = `
		SELECT t.id, t.invoice_number, t.cashier_name, s.name AS store_name, u.full_name AS user_name,
		       t.payment_method, t.total_amount::float8 AS total_amount, t.transaction_date
		FROM transactions t
		LEFT JOIN stores s ON t.store_id = s.id
		LEFT JOIN users u ON t.user_id = u.id`
	transactionCount = `
		SELECT COUNT(*)
		FROM transactions t
		LEFT JOIN stores s ON t.store_id = s.id`
	transactionOrderBy = "t.transaction_date DESC, t.id DESC"
)

// Payment methods are free text written by the terminals; buckets match on
// a case-insensitive substring.
const summarySelect = `
	SELECT COALESCE(s.name, $%d) AS store_name,
	       t.transaction_date::date AS date,
	       COALESCE(SUM(t.total_amount) FILTER (WHERE t.payment_method ILIKE '%%qris%%'), 0)::float8 AS qris_total,
	       COALESCE(SUM(t.total_amount) FILTER (WHERE t.payment_method ILIKE '%%transfer%%'), 0)::float8 AS transfer_total,
	       COALESCE(SUM(t.total_amount) FILTER (WHERE t.payment_method ILIKE '%%tunai%%'), 0)::float8 AS cash_total,
	       COALESCE(SUM(t.total_amount) FILTER (WHERE t.payment_method ILIKE '%%debit%%'), 0)::float8 AS debit_total,
	       SUM(t.total_amount)::float8 AS grand_total
	FROM transactions t
	LEFT JOIN stores s ON t.store_id = s.id
	%s
	GROUP BY 1, 2
	ORDER BY 2, 1`

type TransactionRepository struct {
	db DB
}

func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) query(c ports.Criteria) Query {
	return NewFilter(c, transactionColumns).Query(transactionSelect, transactionCount, transactionOrderBy)
}

func (r *TransactionRepository) List(ctx context.Context, c ports.Criteria, p ports.Page) ([]domain.Transaction, int64, error) {
	rows, total, err := listPage[domain.Transaction](ctx, r.db, r.query(c), p)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return rows, total, nil
}

// All returns every transaction matching c, newest first.
func (r *TransactionRepository) All(ctx context.Context, c ports.Criteria) ([]domain.Transaction, error) {
	sql, args := r.query(c).All()
	return collectAll[domain.Transaction](ctx, r.db, "transactions", sql, args...)
}

// Summary totals sales per store and day within r, optionally for one store.
func (r *TransactionRepository) Summary(ctx context.Context, storeID *int64, rng ports.DateRange) ([]domain.SalesSummaryRow, error) {
	c := ports.Criteria{StoreID: storeID, DateRange: &rng}
	where, args := NewFilter(c, Columns{Store: "t.store_id", Date: "t.transaction_date"}).render()
	args = append(args, domain.UnregisteredStoreName)

	sql := fmt.Sprintf(summarySelect, len(args), where)
	return collectAll[domain.SalesSummaryRow](ctx, r.db, "sales summary", sql, args...)
}
