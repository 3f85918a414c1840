package domain

import "time"

// DashboardStats are the headline counters of the admin dashboard.
type DashboardStats struct {
	SalesToday        float64 `json:"salesToday"`
	TransactionsToday int64   `json:"transactionsToday"`
	PendingUsers      int64   `json:"pendingUsers"`
	ActiveUsers       int64   `json:"activeUsers"`
	ActiveStores      int64   `json:"activeStores"`
}

// DailySales is one point of the sales chart.
type DailySales struct {
	Date  time.Time `json:"date"  db:"date"`
	Total float64   `json:"total" db:"total"`
}

// StoreSales ranks a store by sales.
type StoreSales struct {
	Name       string  `json:"name"       db:"name"`
	TotalSales float64 `json:"totalSales" db:"total_sales"`
}

// RecentTransaction is a row of the dashboard's latest-sales feed.
type RecentTransaction struct {
	InvoiceNumber string  `json:"invoice_number" db:"invoice_number"`
	CashierName   string  `json:"cashier_name"   db:"cashier_name"`
	TotalAmount   float64 `json:"total_amount"   db:"total_amount"`
	StoreName     *string `json:"store_name"     db:"store_name"`
}

// Dashboard is the full payload of the stats endpoint.
type Dashboard struct {
	Stats              DashboardStats      `json:"stats"`
	TopStores          []StoreSales        `json:"topStores"`
	SalesChart         []DailySales        `json:"salesChart"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
}
