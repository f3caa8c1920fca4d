package repositories

import "langnghe/internal/models"

// UserRepository defines the interface for legacy user data access.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}
