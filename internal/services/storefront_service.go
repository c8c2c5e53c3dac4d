package services

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/apperror"
	"marketplace/internal/models"
	"marketplace/internal/repositories"

	"github.com/rs/zerolog"
)

// CreateStorefrontInput is the payload of a storefront creation request.
type CreateStorefrontInput struct {
	Name   string `json:"name" validate:"required"`
	UserID *uint  `json:"user_id" validate:"required"`
}

// StorefrontService handles business logic related to storefronts.
type StorefrontService struct {
	storefrontRepo repositories.StorefrontRepository
	userRepo       repositories.UserRepository
	events         eventEmitter
}

// NewStorefrontService creates a new StorefrontService. publisher may be nil.
func NewStorefrontService(storefrontRepo repositories.StorefrontRepository, userRepo repositories.UserRepository, publisher EventPublisher, log zerolog.Logger) *StorefrontService {
	return &StorefrontService{
		storefrontRepo: storefrontRepo,
		userRepo:       userRepo,
		events:         eventEmitter{publisher: publisher, log: log},
	}
}

// CreateStorefront opens a storefront for an existing user.
func (s *StorefrontService) CreateStorefront(ctx context.Context, in CreateStorefrontInput) (*models.Storefront, error) {
	if in.UserID == nil {
		return nil, apperror.Validation("Validation failed: user_id is required")
	}
	if _, err := s.userRepo.GetByID(ctx, *in.UserID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	storefront := &models.Storefront{
		Name:   in.Name,
		UserID: *in.UserID,
	}
	if err := s.storefrontRepo.Create(ctx, storefront); err != nil {
		return nil, fmt.Errorf("failed to create storefront: %w", err)
	}

	s.events.emit(ctx, EventStorefrontCreated, storefront.ToResponse())
	return storefront, nil
}
