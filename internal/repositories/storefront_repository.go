package repositories

import (
	"context"

	"marketplace/internal/models"
)

// StorefrontRepository defines the interface for storefront data access.
type StorefrontRepository interface {
	Create(ctx context.Context, storefront *models.Storefront) error
	GetByID(ctx context.Context, id uint) (*models.Storefront, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
