package entity

import "time"

// Staff roles.
const (
	RoleAdmin       = "admin"
	RoleCashier     = "cashier"
	RoleOptometrist = "optometrist"
)

// User a staff account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
