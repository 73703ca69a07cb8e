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

var _ repository.FrameRepository = (*FrameRepo)(nil)

// FrameRepo FrameRepository implementation over PostgreSQL (usable with pool
// or tx).
type FrameRepo struct {
	q Querier
}

// NewFrameRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewFrameRepository(q Querier) *FrameRepo {
	return &FrameRepo{q: q}
}

const frameColumns = `id, brand, model, color, size, price, qty, created_at, updated_at`

// Create persists a new frame.
func (r *FrameRepo) Create(frame *entity.Frame) error {
	query := `
		INSERT INTO frames (id, brand, model, color, size, price, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		frame.ID, frame.Brand, frame.Model, nullIfEmpty(frame.Color), nullIfEmpty(frame.Size),
		frame.Price, frame.Qty, frame.CreatedAt, frame.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert frame: %w", err)
	}
	return nil
}

// GetByID fetches a frame by ID.
func (r *FrameRepo) GetByID(id string) (*entity.Frame, error) {
	query := `SELECT ` + frameColumns + ` FROM frames WHERE id = $1`
	frame, err := scanFrame(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get frame: %w", err)
	}
	return frame, nil
}

// Search matches brand, model or color, case-insensitive substring.
func (r *FrameRepo) Search(query string, limit int) ([]*entity.Frame, error) {
	sql := `
		SELECT ` + frameColumns + `
		FROM frames
		WHERE brand ILIKE '%' || $1 || '%'
		   OR model ILIKE '%' || $1 || '%'
		   OR color ILIKE '%' || $1 || '%'
		ORDER BY brand, model
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search frames: %w", err)
	}
	defer rows.Close()
	return collectFrames(rows)
}

// Update rewrites a frame's descriptive fields and price. Qty is adjusted
// through AdjustQty only.
func (r *FrameRepo) Update(frame *entity.Frame) error {
	query := `
		UPDATE frames
		SET brand = $2, model = $3, color = $4, size = $5, price = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		frame.ID, frame.Brand, frame.Model, nullIfEmpty(frame.Color), nullIfEmpty(frame.Size),
		frame.Price, frame.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update frame: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustQty adds delta to the stock quantity. The qty >= 0 guard runs in the
// UPDATE itself, so two concurrent sales of the last unit cannot both succeed.
func (r *FrameRepo) AdjustQty(id string, delta int) error {
	query := `
		UPDATE frames
		SET qty = qty + $2, updated_at = now()
		WHERE id = $1 AND qty + $2 >= 0`
	cmd, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust frame qty: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		exists, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if exists == nil {
			return domain.ErrNotFound
		}
		return domain.ErrOutOfStock
	}
	return nil
}

// List pages through the frame inventory.
func (r *FrameRepo) List(limit, offset int) ([]*entity.Frame, error) {
	query := `SELECT ` + frameColumns + ` FROM frames ORDER BY brand, model LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	defer rows.Close()
	return collectFrames(rows)
}

func scanFrame(row pgx.Row) (*entity.Frame, error) {
	var f entity.Frame
	var color, size *string
	err := row.Scan(&f.ID, &f.Brand, &f.Model, &color, &size, &f.Price, &f.Qty, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if color != nil {
		f.Color = *color
	}
	if size != nil {
		f.Size = *size
	}
	return &f, nil
}

func collectFrames(rows pgx.Rows) ([]*entity.Frame, error) {
	var list []*entity.Frame
	for rows.Next() {
		f, err := scanFrame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
