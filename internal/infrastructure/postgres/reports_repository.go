package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo read-only aggregate queries for the sales dashboard.
type ReportsRepo struct {
	pool *pgxpool.Pool
}

// NewReportsRepository builds the reporting adapter.
func NewReportsRepository(pool *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{pool: pool}
}

// GetSalesMetrics aggregates invoice counts per type, revenue and collected
// payments over the date range. Revenue counts invoices created in range;
// Collected counts payments recorded in range, regardless of the invoice's
// creation date, so an old balance paid today shows in today's cash.
func (r *ReportsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (repository.SalesMetrics, error) {
	const query = `
	SELECT
	    COUNT(*)                                                   AS invoice_count,
	    COUNT(*) FILTER (WHERE invoice_type = 'glasses')           AS glasses_count,
	    COUNT(*) FILTER (WHERE invoice_type = 'contacts')          AS contacts_count,
	    COUNT(*) FILTER (WHERE invoice_type = 'exam')              AS exam_count,
	    COUNT(*) FILTER (WHERE invoice_type = 'repair')            AS repair_count,
	    COALESCE(SUM(total), 0)                                    AS revenue,
	    (SELECT COALESCE(SUM(amount), 0)
	     FROM invoice_payments
	     WHERE date BETWEEN $1 AND $2)                             AS collected
	FROM invoices
	WHERE created_at BETWEEN $1 AND $2`

	var m repository.SalesMetrics
	err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&m.InvoiceCount, &m.GlassesCount, &m.ContactsCount, &m.ExamCount, &m.RepairCount,
		&m.Revenue, &m.Collected,
	)
	if err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("reports.GetSalesMetrics: %w", err)
	}
	return m, nil
}

// GetOutstandingBalance sums the remaining balance across all invoices.
func (r *ReportsRepo) GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(remaining), 0) FROM invoices WHERE remaining > 0`,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetOutstandingBalance: %w", err)
	}
	return balance, nil
}

// GetTopFrameBrands ranks frame brands sold on glasses invoices in the range
// by revenue. Skipped and custom frames without a brand are excluded.
func (r *ReportsRepo) GetTopFrameBrands(ctx context.Context, from, to time.Time, limit int) ([]repository.TopBrandResult, error) {
	const query = `
	SELECT
	    frame_brand                  AS brand,
	    COUNT(*)                     AS units_sold,
	    COALESCE(SUM(frame_price), 0) AS revenue
	FROM invoices
	WHERE invoice_type = 'glasses'
	  AND NOT skip_frame
	  AND frame_brand IS NOT NULL
	  AND created_at BETWEEN $1 AND $2
	GROUP BY frame_brand
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopFrameBrands: %w", err)
	}
	defer rows.Close()

	var results []repository.TopBrandResult
	for rows.Next() {
		var row repository.TopBrandResult
		if err := rows.Scan(&row.Brand, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports: scan top brand: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
