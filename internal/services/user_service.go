package services

import (
	"errors"
	"fmt"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories"
)

// UserService handles idempotent user registration.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// RegisterUser upserts a user by email. Registering an email that already
// exists is a no-op, not an error; the return value reports whether a new
// record was inserted. password is optional and enables the local login
// path when present.
func (s *UserService) RegisterUser(user *models.User, password string) (bool, error) {
	existing, err := s.repo.GetByEmail(user.Email)
	if err == nil && existing != nil {
		return false, nil
	}
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return false, fmt.Errorf("failed to look up user %s: %w", user.Email, err)
	}

	if password != "" {
		hashed, err := HashPassword(password)
		if err != nil {
			return false, err
		}
		user.Password = hashed
	}

	if err := s.repo.Create(user); err != nil {
		return false, err
	}
	return true, nil
}
