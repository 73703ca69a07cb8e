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

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo PatientRepository implementation over PostgreSQL (usable with
// pool or tx). Prescriptions live in JSONB columns; their shape changes with
// the optometry side of the business, the billing columns do not.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

const patientColumns = `id, name, phone, email, date_of_birth, notes, rx, contact_rx, created_at, updated_at`

// Create persists a new patient file.
func (r *PatientRepo) Create(patient *entity.Patient) error {
	rx, err := toJSONB(patient.Rx)
	if err != nil {
		return err
	}
	contactRx, err := toJSONB(patient.ContactRx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO patients (id, name, phone, email, date_of_birth, notes, rx, contact_rx, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.Phone, nullIfEmpty(patient.Email),
		nullIfEmpty(patient.DateOfBirth), nullIfEmpty(patient.Notes),
		rx, contactRx, patient.CreatedAt, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID fetches a patient file by ID.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	patient, err := r.scanPatient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return patient, nil
}

// Search matches name or phone, case-insensitive substring, newest first.
func (r *PatientRepo) Search(query string, limit int) ([]*entity.Patient, error) {
	sql := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	defer rows.Close()
	return r.collectPatients(rows)
}

// Update rewrites a patient file.
func (r *PatientRepo) Update(patient *entity.Patient) error {
	rx, err := toJSONB(patient.Rx)
	if err != nil {
		return err
	}
	contactRx, err := toJSONB(patient.ContactRx)
	if err != nil {
		return err
	}
	query := `
		UPDATE patients
		SET name = $2, phone = $3, email = $4, date_of_birth = $5, notes = $6,
		    rx = $7, contact_rx = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.Phone, nullIfEmpty(patient.Email),
		nullIfEmpty(patient.DateOfBirth), nullIfEmpty(patient.Notes),
		rx, contactRx, patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List pages through patient files, newest first.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	return r.collectPatients(rows)
}

func (r *PatientRepo) scanPatient(row pgx.Row) (*entity.Patient, error) {
	var p entity.Patient
	var email, dob, notes *string
	var rxRaw, contactRxRaw []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Phone, &email, &dob, &notes,
		&rxRaw, &contactRxRaw, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if email != nil {
		p.Email = *email
	}
	if dob != nil {
		p.DateOfBirth = *dob
	}
	if notes != nil {
		p.Notes = *notes
	}
	if err := fromJSONB(rxRaw, &p.Rx); err != nil {
		return nil, err
	}
	if err := fromJSONB(contactRxRaw, &p.ContactRx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepo) collectPatients(rows pgx.Rows) ([]*entity.Patient, error) {
	var list []*entity.Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
