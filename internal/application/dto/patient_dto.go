package dto

import "time"

// EyeRxDTO one eye's glasses prescription.
type EyeRxDTO struct {
	Sphere   string `json:"sphere,omitempty"`
	Cylinder string `json:"cylinder,omitempty"`
	Axis     string `json:"axis,omitempty"`
	Add      string `json:"add,omitempty"`
	PD       string `json:"pd,omitempty"`
}

// GlassesRxDTO glasses prescription, both eyes.
type GlassesRxDTO struct {
	OD EyeRxDTO `json:"od"`
	OS EyeRxDTO `json:"os"`
}

// ContactEyeRxDTO one eye's contact lens prescription.
type ContactEyeRxDTO struct {
	Sphere    string `json:"sphere,omitempty"`
	Cylinder  string `json:"cylinder,omitempty"`
	Axis      string `json:"axis,omitempty"`
	BaseCurve string `json:"base_curve,omitempty"`
	Diameter  string `json:"diameter,omitempty"`
}

// ContactLensRxDTO contact lens prescription, both eyes.
type ContactLensRxDTO struct {
	OD ContactEyeRxDTO `json:"od"`
	OS ContactEyeRxDTO `json:"os"`
}

// CreatePatientRequest body for POST /api/patients.
type CreatePatientRequest struct {
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email,omitempty"`
	DateOfBirth string            `json:"date_of_birth,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Rx          *GlassesRxDTO     `json:"rx,omitempty"`
	ContactRx   *ContactLensRxDTO `json:"contact_rx,omitempty"`
}

// UpdatePatientRequest body for PUT /api/patients/:id. Nil prescription
// fields leave the stored prescription untouched.
type UpdatePatientRequest struct {
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email,omitempty"`
	DateOfBirth string            `json:"date_of_birth,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Rx          *GlassesRxDTO     `json:"rx,omitempty"`
	ContactRx   *ContactLensRxDTO `json:"contact_rx,omitempty"`
}

// PatientResponse patient file in responses.
type PatientResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email,omitempty"`
	DateOfBirth string            `json:"date_of_birth,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Rx          *GlassesRxDTO     `json:"rx,omitempty"`
	ContactRx   *ContactLensRxDTO `json:"contact_rx,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
