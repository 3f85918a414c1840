package ports

import (
	"context"
	"io"
	"time"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

// TransactionRepository reads sales. List and Count share one predicate set;
// All applies it without a page window.
type TransactionRepository interface {
	List(ctx context.Context, c Criteria, p Page) ([]domain.Transaction, int64, error)
	All(ctx context.Context, c Criteria) ([]domain.Transaction, error)
	Summary(ctx context.Context, storeID *int64, r DateRange) ([]domain.SalesSummaryRow, error)
}

// Report is a rendered, fully buffered spreadsheet ready to download.
type Report struct {
	Filename string
	Content  []byte
}

type TransactionService interface {
	List(ctx context.Context, c Criteria, p Page) (*PageResult[domain.Transaction], error)
	ExportDetails(ctx context.Context, c Criteria) (*Report, error)
	ExportSummary(ctx context.Context, storeID *int64, r *DateRange) (*Report, error)
}

// SummaryHeader describes the scope printed above a sales summary.
type SummaryHeader struct {
	StoreLabel string
	Period     DateRange
}

// ReportRenderer formats rows into a spreadsheet workbook.
type ReportRenderer interface {
	TransactionDetails(w io.Writer, rows []domain.Transaction, exportedAt time.Time) error
	SalesSummary(w io.Writer, rows []domain.SalesSummaryRow, header SummaryHeader) error
}

// DashboardRepository computes the dashboard aggregates for a given day.
type DashboardRepository interface {
	Stats(ctx context.Context, dayStart time.Time) (domain.DashboardStats, error)
	SalesChart(ctx context.Context, since time.Time) ([]domain.DailySales, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error)
	TopStores(ctx context.Context, dayStart time.Time, limit int) ([]domain.StoreSales, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (*domain.Dashboard, error)
}
