package repositories

import "catalog/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// DeleteAll removes every user row; only reseeding calls this, after
	// the products referencing them are gone.
	DeleteAll() (int64, error)
}
