package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

var _ repository.LensCatalogRepository = (*LensCatalogRepo)(nil)

// LensCatalogRepo LensCatalogRepository implementation over PostgreSQL
// (usable with pool or tx). The lens catalog is maintained by the store
// owner; at the register it is read-only.
type LensCatalogRepo struct {
	q Querier
}

// NewLensCatalogRepository builds the read adapter. Pass pool or tx (Querier).
func NewLensCatalogRepository(q Querier) *LensCatalogRepo {
	return &LensCatalogRepo{q: q}
}

// ListLensTypes returns every sellable lens family.
func (r *LensCatalogRepo) ListLensTypes() ([]*entity.LensType, error) {
	query := `SELECT id, name, name_ar, category, price FROM lens_types ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list lens types: %w", err)
	}
	defer rows.Close()
	var list []*entity.LensType
	for rows.Next() {
		var lt entity.LensType
		var nameAr *string
		if err := rows.Scan(&lt.ID, &lt.Name, &nameAr, &lt.Category, &lt.Price); err != nil {
			return nil, fmt.Errorf("scan lens type: %w", err)
		}
		if nameAr != nil {
			lt.NameAr = *nameAr
		}
		list = append(list, &lt)
	}
	return list, rows.Err()
}

// ListCoatingsByCategory returns the coatings offered for a lens category.
func (r *LensCatalogRepo) ListCoatingsByCategory(category string) ([]*entity.LensCoating, error) {
	query := `
		SELECT id, name, name_ar, category, price, is_photochromic
		FROM lens_coatings WHERE category = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list coatings: %w", err)
	}
	defer rows.Close()
	var list []*entity.LensCoating
	for rows.Next() {
		var c entity.LensCoating
		var nameAr *string
		if err := rows.Scan(&c.ID, &c.Name, &nameAr, &c.Category, &c.Price, &c.IsPhotochromic); err != nil {
			return nil, fmt.Errorf("scan coating: %w", err)
		}
		if nameAr != nil {
			c.NameAr = *nameAr
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListThicknessesByCategory returns the thickness options for a lens category.
func (r *LensCatalogRepo) ListThicknessesByCategory(category string) ([]*entity.LensThickness, error) {
	query := `
		SELECT id, name, name_ar, category, price
		FROM lens_thicknesses WHERE category = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list thicknesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.LensThickness
	for rows.Next() {
		var th entity.LensThickness
		var nameAr *string
		if err := rows.Scan(&th.ID, &th.Name, &nameAr, &th.Category, &th.Price); err != nil {
			return nil, fmt.Errorf("scan thickness: %w", err)
		}
		if nameAr != nil {
			th.NameAr = *nameAr
		}
		list = append(list, &th)
	}
	return list, rows.Err()
}

// GetCombinationPrice returns the bundled price for an exact component
// triple, or nil when no combination row exists. A miss is not an error; the
// caller falls back to summing component prices.
func (r *LensCatalogRepo) GetCombinationPrice(lensTypeID, coatingID, thicknessID string) (*decimal.Decimal, error) {
	query := `
		SELECT price FROM lens_pricing_combinations
		WHERE lens_type_id = $1 AND coating_id = $2 AND thickness_id = $3`
	var price decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, lensTypeID, coatingID, thicknessID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get combination price: %w", err)
	}
	return &price, nil
}
