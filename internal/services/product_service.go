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

// CreateProductInput is the payload of a product creation request.
// ImageURL is optional and stored as "" when absent.
type CreateProductInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
	ImageURL     string   `json:"image_url"`
	StorefrontID *uint    `json:"storefront_id" validate:"required"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo    repositories.ProductRepository
	storefrontRepo repositories.StorefrontRepository
	events         eventEmitter
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(productRepo repositories.ProductRepository, storefrontRepo repositories.StorefrontRepository, publisher EventPublisher, log zerolog.Logger) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		storefrontRepo: storefrontRepo,
		events:         eventEmitter{publisher: publisher, log: log},
	}
}

// CreateProduct lists a product in an existing storefront. The rating starts
// at zero and is never recomputed.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if in.Price == nil || in.StorefrontID == nil {
		return nil, apperror.Validation("Validation failed: price and storefront_id are required")
	}
	exists, err := s.storefrontRepo.Exists(ctx, *in.StorefrontID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("Storefront")
	}

	product := &models.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        *in.Price,
		ImageURL:     in.ImageURL,
		StorefrontID: *in.StorefrontID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.events.emit(ctx, EventProductCreated, product.ToResponse())
	return product, nil
}

// ListProducts retrieves the products matching filter.
func (s *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.productRepo.List(ctx, filter)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("Product")
		}
		return nil, err
	}
	return product, nil
}
