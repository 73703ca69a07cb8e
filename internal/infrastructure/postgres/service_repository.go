package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo ServiceRepository implementation over PostgreSQL (usable with
// pool or tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository builds the read adapter. Pass pool or tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, name, name_ar, description, category, price`

// ListByCategory returns billable services; an empty category returns all.
func (r *ServiceRepo) ListByCategory(category string) ([]*entity.ServiceItem, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE $1 = '' OR category = $1
		ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceItem
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID fetches a service by ID.
func (r *ServiceRepo) GetByID(id string) (*entity.ServiceItem, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	svc, err := scanService(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

// GetExamService returns the store's eye exam service, or nil when none is
// configured. With several exam rows the cheapest wins; stores configure one.
func (r *ServiceRepo) GetExamService() (*entity.ServiceItem, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services WHERE category = $1
		ORDER BY price ASC LIMIT 1`
	svc, err := scanService(r.q.QueryRow(context.Background(), query, entity.ServiceCategoryExam))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exam service: %w", err)
	}
	return svc, nil
}

func scanService(row pgx.Row) (*entity.ServiceItem, error) {
	var s entity.ServiceItem
	var nameAr, description *string
	err := row.Scan(&s.ID, &s.Name, &nameAr, &description, &s.Category, &s.Price)
	if err != nil {
		return nil, err
	}
	if nameAr != nil {
		s.NameAr = *nameAr
	}
	if description != nil {
		s.Description = *description
	}
	return &s, nil
}
