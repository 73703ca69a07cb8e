package entity

import "time"

// Patient is a customer file: identity plus the latest prescriptions.
type Patient struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	DateOfBirth string // free text, the store records "1985" as readily as a full date
	Notes       string
	Rx          *GlassesRx
	ContactRx   *ContactLensRx
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
