package repositories

import (
	"langnghe/internal/models"
)

// CreateUser creates a new user in the database.
func (r *GORMStorage) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return translate(err, "create user %s", user.Username)
	}
	return nil
}

// GetUserByUsername retrieves a user by their username from the database.
func (r *GORMStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err, "get user with username %s", username)
	}
	return &user, nil
}

// GetUserByID retrieves a user by their ID from the database.
func (r *GORMStorage) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err, "get user with ID %d", id)
	}
	return &user, nil
}
