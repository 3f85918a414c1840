package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
	"github.com/retailnet/pos-admin/internal/pkg/metrics"
)

const (
	reportDetails = "transaction_details"
	reportSummary = "sales_summary"

	allStoresLabel = "All Stores"
)

type TransactionService struct {
	repo     ports.TransactionRepository
	renderer ports.ReportRenderer
	log      zerolog.Logger
	now      func() time.Time
}

func NewTransactionService(repo ports.TransactionRepository, renderer ports.ReportRenderer, log zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, renderer: renderer, log: log, now: time.Now}
}

func (s *TransactionService) List(ctx context.Context, c ports.Criteria, p ports.Page) (*ports.PageResult[domain.Transaction], error) {
	rows, total, err := s.repo.List(ctx, c, p)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return &ports.PageResult[domain.Transaction]{
		Items:       rows,
		TotalPages:  p.TotalPages(total),
		CurrentPage: p.Number,
	}, nil
}

// ExportDetails renders every transaction matching c. The whole result set and
// workbook are held in memory until the response is written.
func (s *TransactionService) ExportDetails(ctx context.Context, c ports.Criteria) (*ports.Report, error) {
	start := time.Now()
	rows, err := s.repo.All(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("export transactions: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoExportData
	}

	now := s.now()
	var buf bytes.Buffer
	if err := s.renderer.TransactionDetails(&buf, rows, now); err != nil {
		return nil, fmt.Errorf("export transactions: render: %w", err)
	}

	s.observe(reportDetails, len(rows), start)
	return &ports.Report{
		Filename: fmt.Sprintf("transaction-details-%s.xlsx", now.Format(ports.DateLayout)),
		Content:  buf.Bytes(),
	}, nil
}

// ExportSummary renders daily per-store totals by payment method. Both dates
// are mandatory.
func (s *TransactionService) ExportSummary(ctx context.Context, storeID *int64, r *ports.DateRange) (*ports.Report, error) {
	if r == nil {
		return nil, domain.NewValidationError("startDate and endDate are required")
	}
	start := time.Now()
	rows, err := s.repo.Summary(ctx, storeID, *r)
	if err != nil {
		return nil, fmt.Errorf("export summary: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoExportData
	}

	header := ports.SummaryHeader{StoreLabel: allStoresLabel, Period: *r}
	if storeID != nil {
		header.StoreLabel = rows[0].StoreName
	}

	var buf bytes.Buffer
	if err := s.renderer.SalesSummary(&buf, rows, header); err != nil {
		return nil, fmt.Errorf("export summary: render: %w", err)
	}

	s.observe(reportSummary, len(rows), start)
	return &ports.Report{
		Filename: fmt.Sprintf("sales-summary-%s-to-%s.xlsx", r.Start.Format(ports.DateLayout), r.End.Format(ports.DateLayout)),
		Content:  buf.Bytes(),
	}, nil
}

func (s *TransactionService) observe(report string, rows int, start time.Time) {
	metrics.ExportsTotal.WithLabelValues(report).Inc()
	metrics.ExportRows.WithLabelValues(report).Observe(float64(rows))
	metrics.ExportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	s.log.Info().Str("report", report).Int("rows", rows).Dur("took", time.Since(start)).Msg("export generated")
}
