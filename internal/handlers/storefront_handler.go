package handlers

import (
	"marketplace/internal/services"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// StorefrontHandler handles HTTP requests for storefronts.
type StorefrontHandler struct {
	service  *services.StorefrontService
	validate *validation.Validator
	log      zerolog.Logger
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(service *services.StorefrontService, validate *validation.Validator, log zerolog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the storefront routes.
func (h *StorefrontHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/storefront", h.HandleCreateStorefront)
}

// HandleCreateStorefront opens a storefront for an existing user.
func (h *StorefrontHandler) HandleCreateStorefront(c *fiber.Ctx) error {
	var req services.CreateStorefrontInput
	if err := parseBody(c, h.validate, &req); err != nil {
		return writeError(c, h.log, err)
	}

	storefront, err := h.service.CreateStorefront(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(storefront.ToResponse())
}
