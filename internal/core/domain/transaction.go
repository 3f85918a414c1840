package domain

import "time"

// Transaction is one sale recorded by a point-of-sale terminal, joined with
// the store and user names for display.
type Transaction struct {
	ID              int64     `json:"id"               db:"id"`
	InvoiceNumber   string    `json:"invoice_number"   db:"invoice_number"`
	CashierName     string    `json:"cashier_name"     db:"cashier_name"`
	StoreName       *string   `json:"store_name"       db:"store_name"`
	UserName        *string   `json:"user_name"        db:"user_name"`
	PaymentMethod   string    `json:"payment_method"   db:"payment_method"`
	TotalAmount     float64   `json:"total_amount"     db:"total_amount"`
	TransactionDate time.Time `json:"transaction_date" db:"transaction_date"`
}

// SalesSummaryRow aggregates one store's sales on one day by payment method.
type SalesSummaryRow struct {
	StoreName     string    `db:"store_name"`
	Date          time.Time `db:"date"`
	QRISTotal     float64   `db:"qris_total"`
	TransferTotal float64   `db:"transfer_total"`
	CashTotal     float64   `db:"cash_total"`
	DebitTotal    float64   `db:"debit_total"`
	GrandTotal    float64   `db:"grand_total"`
}

// UnregisteredStoreName labels summary rows whose store no longer resolves.
const UnregisteredStoreName = "Unregistered Store"
