package repositories

import (
	"context"

	"marketplace/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID uint) ([]models.Review, error)
}
