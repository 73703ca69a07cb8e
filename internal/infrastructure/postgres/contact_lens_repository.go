package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

var _ repository.ContactLensRepository = (*ContactLensRepo)(nil)

// ContactLensRepo ContactLensRepository implementation over PostgreSQL
// (usable with pool or tx).
type ContactLensRepo struct {
	q Querier
}

// NewContactLensRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewContactLensRepository(q Querier) *ContactLensRepo {
	return &ContactLensRepo{q: q}
}

const contactLensColumns = `id, brand, type, power, color, price, qty, created_at, updated_at`

// Create persists a new contact lens product.
func (r *ContactLensRepo) Create(lens *entity.ContactLens) error {
	query := `
		INSERT INTO contact_lenses (id, brand, type, power, color, price, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		lens.ID, lens.Brand, lens.Type, nullIfEmpty(lens.Power), nullIfEmpty(lens.Color),
		lens.Price, lens.Qty, lens.CreatedAt, lens.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact lens: %w", err)
	}
	return nil
}

// GetByID fetches a contact lens product by ID.
func (r *ContactLensRepo) GetByID(id string) (*entity.ContactLens, error) {
	query := `SELECT ` + contactLensColumns + ` FROM contact_lenses WHERE id = $1`
	lens, err := scanContactLens(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact lens: %w", err)
	}
	return lens, nil
}

// Search matches brand or type, case-insensitive substring.
func (r *ContactLensRepo) Search(query string, limit int) ([]*entity.ContactLens, error) {
	sql := `
		SELECT ` + contactLensColumns + `
		FROM contact_lenses
		WHERE brand ILIKE '%' || $1 || '%' OR type ILIKE '%' || $1 || '%'
		ORDER BY brand
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search contact lenses: %w", err)
	}
	defer rows.Close()
	return collectContactLenses(rows)
}

// List pages through contact lens stock.
func (r *ContactLensRepo) List(limit, offset int) ([]*entity.ContactLens, error) {
	query := `SELECT ` + contactLensColumns + ` FROM contact_lenses ORDER BY brand LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contact lenses: %w", err)
	}
	defer rows.Close()
	return collectContactLenses(rows)
}

func scanContactLens(row pgx.Row) (*entity.ContactLens, error) {
	var l entity.ContactLens
	var power, color *string
	err := row.Scan(&l.ID, &l.Brand, &l.Type, &power, &color, &l.Price, &l.Qty, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if power != nil {
		l.Power = *power
	}
	if color != nil {
		l.Color = *color
	}
	return &l, nil
}

func collectContactLenses(rows pgx.Rows) ([]*entity.ContactLens, error) {
	var list []*entity.ContactLens
	for rows.Next() {
		l, err := scanContactLens(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact lens: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
