package repositories

import (
	"context"

	"marketplace/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
}
