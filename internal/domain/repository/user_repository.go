package repository

import "github.com/Moein-9/optica-api/internal/domain/entity"

// UserRepository persistence port for staff accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
