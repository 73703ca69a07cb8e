// Package analytics contains the use cases behind the store's sales
// dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

const dashboardTopBrands = 5 // entries in the top frame brands widget

// DashboardUseCase builds the financial summary for today and the current
// month.
//
// Data source: ReportsRepository (read-only queries). It never touches the
// invoice tables directly; everything is delegated to the repository.
type DashboardUseCase struct {
	reportsRepo repository.ReportsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(reportsRepo repository.ReportsRepository) *DashboardUseCase {
	return &DashboardUseCase{reportsRepo: reportsRepo}
}

// GetSummary builds the DashboardSummaryDTO.
//
// Four queries run in parallel:
//  1. GetSalesMetrics(today)          → Today
//  2. GetSalesMetrics(current month)  → Month
//  3. GetOutstandingBalance           → Outstanding
//  4. GetTopFrameBrands(month, top 5) → TopBrands
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Today: 00:00:00.000 to 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Current month: the 1st at 00:00 through today 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type metricsResult struct {
		metrics repository.SalesMetrics
		err     error
	}
	type outstandingResult struct {
		balance decimal.Decimal
		err     error
	}
	type brandsResult struct {
		brands []repository.TopBrandResult
		err    error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	outstandingCh := make(chan outstandingResult, 1)
	brandsCh := make(chan brandsResult, 1)

	go func() {
		m, err := uc.reportsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{m, err}
	}()
	go func() {
		m, err := uc.reportsRepo.GetSalesMetrics(ctx, monthStart, monthEnd)
		monthCh <- metricsResult{m, err}
	}()
	go func() {
		balance, err := uc.reportsRepo.GetOutstandingBalance(ctx)
		outstandingCh <- outstandingResult{balance, err}
	}()
	go func() {
		brands, err := uc.reportsRepo.GetTopFrameBrands(ctx, monthStart, monthEnd, dashboardTopBrands)
		brandsCh <- brandsResult{brands, err}
	}()

	today := <-todayCh
	month := <-monthCh
	outstanding := <-outstandingCh
	brands := <-brandsCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: today metrics: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: month metrics: %w", month.err)
	}
	if outstanding.err != nil {
		return nil, fmt.Errorf("dashboard: outstanding balance: %w", outstanding.err)
	}
	if brands.err != nil {
		return nil, fmt.Errorf("dashboard: top brands: %w", brands.err)
	}

	summary := &dto.DashboardSummaryDTO{
		Today:       toPeriodMetrics(today.metrics),
		Month:       toPeriodMetrics(month.metrics),
		Outstanding: outstanding.balance,
	}
	for _, b := range brands.brands {
		summary.TopBrands = append(summary.TopBrands, dto.TopBrandDTO{
			Brand:     b.Brand,
			UnitsSold: b.UnitsSold,
			Revenue:   b.Revenue,
		})
	}
	return summary, nil
}

func toPeriodMetrics(m repository.SalesMetrics) dto.PeriodMetricsDTO {
	return dto.PeriodMetricsDTO{
		InvoiceCount:  m.InvoiceCount,
		GlassesCount:  m.GlassesCount,
		ContactsCount: m.ContactsCount,
		ExamCount:     m.ExamCount,
		RepairCount:   m.RepairCount,
		Revenue:       m.Revenue,
		Collected:     m.Collected,
	}
}
