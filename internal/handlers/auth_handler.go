package handlers

import (
	"marketplace/internal/services"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AuthHandler handles HTTP requests for user registration.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validation.Validator
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validate *validation.Validator, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
		log:         log,
	}
}

// RegisterRoutes registers the registration route.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := parseBody(c, h.validate, &req); err != nil {
		return writeError(c, h.log, err)
	}

	user, err := h.authService.RegisterUser(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.ToResponse())
}
