// Package report renders transaction exports as Excel workbooks.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/retailnet/pos-admin/internal/core/domain"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

var _ ports.ReportRenderer = (*ExcelRenderer)(nil)

const (
	DetailsSheet = "Transaction Details"
	SummarySheet = "Sales Summary"

	moneyFormat    = "#,##0"
	dateFormat     = "dd/mm/yyyy"
	dateTimeFormat = "dd/mm/yyyy hh:mm"
	missingValue   = "N/A"
)

var (
	detailHeaders  = []string{"Invoice No.", "Store", "User", "Cashier", "Payment Method", "Total", "Transaction Date"}
	detailWidths   = []float64{20, 25, 22, 20, 22, 18, 20}
	summaryHeaders = []string{"Date", "Store", "QRIS Total", "Transfer Total", "Cash Total", "Debit Total", "Grand Total"}
	summaryWidths  = []float64{15, 28, 18, 18, 18, 18, 22}
)

// ExcelRenderer lays out exports with a title block, a styled header row,
// zebra-striped data rows and a SUM totals row.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

// TransactionDetails writes one row per transaction.
func (r *ExcelRenderer) TransactionDetails(w io.Writer, rows []domain.Transaction, exportedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := DetailsSheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	st, err := newStyles(f, "2E75B6")
	if err != nil {
		return err
	}

	b := &sheetBuilder{f: f, sheet: sheet, cols: len(detailHeaders)}
	b.title(1, "TRANSACTION DETAILS REPORT", st.title, 30)
	b.title(2, "Exported at: "+exportedAt.Format("2 January 2006 15:04"), st.subtitle, 20)
	b.widths(detailWidths)

	const headerRow = 4
	b.header(headerRow, detailHeaders, st.header)

	first := headerRow + 1
	for i, tx := range rows {
		row := first + i
		b.set(1, row, tx.InvoiceNumber)
		b.set(2, row, orMissing(tx.StoreName))
		b.set(3, row, orMissing(tx.UserName))
		b.set(4, row, tx.CashierName)
		b.set(5, row, CleanPaymentMethod(tx.PaymentMethod))
		b.set(6, row, tx.TotalAmount)
		b.set(7, row, tx.TransactionDate)

		text, money, date := st.text[i%2], st.money[i%2], st.dateTime[i%2]
		b.style(1, row, 5, row, text)
		b.style(6, row, 6, row, money)
		b.style(7, row, 7, row, date)
	}

	last := first + len(rows) - 1
	totalRow := last + 2
	b.set(5, totalRow, "GRAND TOTAL:")
	b.style(5, totalRow, 5, totalRow, st.totalLabel)
	b.formula(6, totalRow, sumRange("F", first, last))
	b.style(6, totalRow, 6, totalRow, st.total)
	b.height(totalRow, 25)

	if b.err != nil {
		return b.err
	}
	return f.Write(w)
}

// SalesSummary writes one row per store and day with payment method totals.
func (r *ExcelRenderer) SalesSummary(w io.Writer, rows []domain.SalesSummaryRow, header ports.SummaryHeader) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SummarySheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	st, err := newStyles(f, "4472C4")
	if err != nil {
		return err
	}

	b := &sheetBuilder{f: f, sheet: sheet, cols: len(summaryHeaders)}
	b.title(1, "SALES SUMMARY REPORT", st.title, 30)
	b.title(2, header.StoreLabel, st.storeLabel, 22)
	b.title(3, fmt.Sprintf("Period: %s - %s",
		header.Period.Start.Format("2 January 2006"), header.Period.End.Format("2 January 2006")), st.subtitle, 20)
	b.widths(summaryWidths)

	const headerRow = 5
	b.header(headerRow, summaryHeaders, st.header)

	first := headerRow + 1
	for i, s := range rows {
		row := first + i
		b.set(1, row, s.Date)
		b.set(2, row, s.StoreName)
		b.set(3, row, s.QRISTotal)
		b.set(4, row, s.TransferTotal)
		b.set(5, row, s.CashTotal)
		b.set(6, row, s.DebitTotal)
		b.set(7, row, s.GrandTotal)

		b.style(1, row, 1, row, st.date[i%2])
		b.style(2, row, 2, row, st.text[i%2])
		b.style(3, row, 7, row, st.money[i%2])
	}

	last := first + len(rows) - 1
	totalRow := last + 1
	b.set(2, totalRow, "GRAND TOTAL")
	b.style(1, totalRow, 2, totalRow, st.totalLabel)
	for col, letter := range []string{"C", "D", "E", "F", "G"} {
		b.formula(col+3, totalRow, sumRange(letter, first, last))
	}
	b.style(3, totalRow, 7, totalRow, st.total)
	b.height(totalRow, 28)

	if b.err != nil {
		return b.err
	}
	return f.Write(w)
}

// CleanPaymentMethod strips decorations such as emoji from a payment method
// label, keeping letters, digits and spaces.
func CleanPaymentMethod(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(cleaned)
}

func orMissing(s *string) string {
	if s == nil || *s == "" {
		return missingValue
	}
	return *s
}

func sumRange(col string, first, last int) string {
	return fmt.Sprintf("SUM(%s%d:%s%d)", col, first, col, last)
}
