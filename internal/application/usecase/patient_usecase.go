package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/domain"
	"github.com/Moein-9/optica-api/internal/domain/entity"
	"github.com/Moein-9/optica-api/internal/domain/repository"
)

// PatientUseCase CRUD and search for patient files.
type PatientUseCase struct {
	repo repository.PatientRepository
}

// NewPatientUseCase builds the use case.
func NewPatientUseCase(repo repository.PatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

// Create registers a new patient file. Name and phone are mandatory; the
// phone doubles as the store's search key at the counter.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	patient := &entity.Patient{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		DateOfBirth: in.DateOfBirth,
		Notes:       in.Notes,
		Rx:          in.Rx.ToEntity(),
		ContactRx:   in.ContactRx.ToEntity(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID fetches a patient file.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}
	return toPatientResponse(patient), nil
}

// Search finds patients by name or phone substring.
func (uc *PatientUseCase) Search(query string, limit int) ([]*dto.PatientResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	patients, err := uc.repo.Search(query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	return out, nil
}

// Update rewrites a patient file. Nil prescription DTOs leave the stored
// prescriptions untouched, so updating contact details never wipes an Rx.
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		patient.Name = in.Name
	}
	if in.Phone != "" {
		patient.Phone = in.Phone
	}
	patient.Email = in.Email
	patient.DateOfBirth = in.DateOfBirth
	patient.Notes = in.Notes
	if in.Rx != nil {
		patient.Rx = in.Rx.ToEntity()
	}
	if in.ContactRx != nil {
		patient.ContactRx = in.ContactRx.ToEntity()
	}
	patient.UpdatedAt = time.Now()
	if err := uc.repo.Update(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// List pages through patient files.
func (uc *PatientUseCase) List(limit, offset int) ([]*dto.PatientResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	patients, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	return out, nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Notes:       p.Notes,
		Rx:          dto.NewGlassesRxDTO(p.Rx),
		ContactRx:   dto.NewContactLensRxDTO(p.ContactRx),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
