package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics raw aggregates over a date range. Produced by the DB; the use
// case converts them into DTOs.
type SalesMetrics struct {
	InvoiceCount  int
	GlassesCount  int
	ContactsCount int
	ExamCount     int
	RepairCount   int
	Revenue       decimal.Decimal // sum of invoice totals
	Collected     decimal.Decimal // sum of payments recorded in the range
}

// TopBrandResult frames sold per brand, ordered by revenue descending.
type TopBrandResult struct {
	Brand     string
	UnitsSold int
	Revenue   decimal.Decimal
}

// ReportsRepository read-only queries for the sales dashboard.
type ReportsRepository interface {
	GetSalesMetrics(ctx context.Context, from, to time.Time) (SalesMetrics, error)
	// GetOutstandingBalance sums the remaining balance across all invoices.
	GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error)
	GetTopFrameBrands(ctx context.Context, from, to time.Time, limit int) ([]TopBrandResult, error)
}
