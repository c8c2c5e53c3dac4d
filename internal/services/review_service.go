package services

import (
	"context"
	"fmt"

	"marketplace/internal/apperror"
	"marketplace/internal/models"
	"marketplace/internal/repositories"

	"github.com/rs/zerolog"
)

// CreateReviewInput is the payload of a review creation request. The product
// comes from the request path.
type CreateReviewInput struct {
	Content string `json:"content" validate:"required"`
	Rating  *int   `json:"rating" validate:"required"`
}

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	events      eventEmitter
}

// NewReviewService creates a new ReviewService. publisher may be nil.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository, publisher EventPublisher, log zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		events:      eventEmitter{publisher: publisher, log: log},
	}
}

// CreateReview attaches a review to an existing product.
func (s *ReviewService) CreateReview(ctx context.Context, productID uint, in CreateReviewInput) (*models.Review, error) {
	if in.Rating == nil {
		return nil, apperror.Validation("Validation failed: rating is required")
	}
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	review := &models.Review{
		Content:   in.Content,
		Rating:    *in.Rating,
		ProductID: productID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.events.emit(ctx, EventReviewCreated, review.ToResponse())
	return review, nil
}

// ListReviews returns the reviews of an existing product, oldest first.
func (s *ReviewService) ListReviews(ctx context.Context, productID uint) ([]models.Review, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByProduct(ctx, productID)
}

func (s *ReviewService) requireProduct(ctx context.Context, productID uint) error {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Product")
	}
	return nil
}
