package dto

import "github.com/shopspring/decimal"

// TopBrandDTO one entry of the dashboard's top frame brands widget.
type TopBrandDTO struct {
	Brand     string          `json:"brand"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// PeriodMetricsDTO sales aggregates for one period (today or current month).
type PeriodMetricsDTO struct {
	InvoiceCount  int             `json:"invoice_count"`
	GlassesCount  int             `json:"glasses_count"`
	ContactsCount int             `json:"contacts_count"`
	ExamCount     int             `json:"exam_count"`
	RepairCount   int             `json:"repair_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	Collected     decimal.Decimal `json:"collected"`
}

// DashboardSummaryDTO response for GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Today       PeriodMetricsDTO `json:"today"`
	Month       PeriodMetricsDTO `json:"month"`
	Outstanding decimal.Decimal  `json:"outstanding"`
	TopBrands   []TopBrandDTO    `json:"top_brands"`
}
