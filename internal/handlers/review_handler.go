package handlers

import (
	"marketplace/internal/models"
	"marketplace/internal/services"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validation.Validator
	log      zerolog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService, validate *validation.Validator, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products/:product_id/reviews", h.HandleCreateReview)
	router.Get("/products/:product_id/reviews", h.HandleListReviews)
}

// HandleCreateReview adds a review to an existing product.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	productID, err := productIDParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	var req services.CreateReviewInput
	if err := parseBody(c, h.validate, &req); err != nil {
		return writeError(c, h.log, err)
	}

	review, err := h.service.CreateReview(c.UserContext(), productID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review.ToResponse())
}

// HandleListReviews returns the reviews of an existing product.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	productID, err := productIDParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	reviews, err := h.service.ListReviews(c.UserContext(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(models.ReviewsToResponse(reviews))
}
