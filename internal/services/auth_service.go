package services

import (
	"context"
	"fmt"

	"marketplace/internal/apperror"
	"marketplace/internal/auth"
	"marketplace/internal/models"
	"marketplace/internal/repositories"

	"github.com/rs/zerolog"
)

// RegisterInput is the payload of a registration request.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles user registration.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *auth.PasswordHasher
	events   eventEmitter
}

// NewAuthService creates a new AuthService. publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, hasher *auth.PasswordHasher, publisher EventPublisher, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		events:   eventEmitter{publisher: publisher, log: log},
	}
}

// RegisterUser creates a user after checking that neither the username nor
// the email is taken, in that order. Only the password hash is stored.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	taken, err := s.userRepo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.AlreadyExists("username")
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.AlreadyExists("email")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.events.emit(ctx, EventUserRegistered, user.ToResponse())
	return user, nil
}
