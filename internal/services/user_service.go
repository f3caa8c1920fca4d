package services

import (
	"errors"
	"fmt"

	"langnghe/internal/models"
	"langnghe/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned by RegisterUser when the username exists.
var ErrUsernameTaken = fmt.Errorf("username already taken: %w", repositories.ErrDuplicate)

// UserService manages the legacy user records. No HTTP route exposes it.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// RegisterUser hashes the password and saves the user.
func (s *UserService) RegisterUser(user *models.User) error {
	if _, err := s.userRepo.GetUserByUsername(user.Username); err == nil {
		return fmt.Errorf("'%s': %w", user.Username, ErrUsernameTaken)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up username %s: %w", user.Username, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.CreateUser(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// CheckPassword reports whether password matches the user's stored hash.
func (s *UserService) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetUserByID(id)
}

func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetUserByUsername(username)
}
