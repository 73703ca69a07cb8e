package repository

import "github.com/Moein-9/optica-api/internal/domain/entity"

// PatientRepository persistence port for patient files.
type PatientRepository interface {
	Create(patient *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	// Search matches by name or phone, case-insensitive substring. An empty
	// result is a lookup-miss, not an error.
	Search(query string, limit int) ([]*entity.Patient, error)
	Update(patient *entity.Patient) error
	List(limit, offset int) ([]*entity.Patient, error)
}
