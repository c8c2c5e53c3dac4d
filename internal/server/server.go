// Package server assembles the Fiber application: middleware, error
// handling, repositories, services and routes.
package server

import (
	"errors"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/handlers"
	"marketplace/internal/middleware"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deps are the collaborators the server needs. Publisher may be nil, in
// which case no domain events are emitted.
type Deps struct {
	DB        *gorm.DB
	Hasher    *auth.PasswordHasher
	Publisher services.EventPublisher
	Log       zerolog.Logger
}

// New builds the marketplace Fiber app.
func New(deps Deps) *fiber.App {
	log := deps.Log

	app := fiber.New(fiber.Config{
		AppName:      "marketplace",
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))

	userRepo := repositories.NewGORMUserRepository(deps.DB)
	storefrontRepo := repositories.NewGORMStorefrontRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	reviewRepo := repositories.NewGORMReviewRepository(deps.DB)

	authService := services.NewAuthService(userRepo, deps.Hasher, deps.Publisher, log)
	storefrontService := services.NewStorefrontService(storefrontRepo, userRepo, deps.Publisher, log)
	productService := services.NewProductService(productRepo, storefrontRepo, deps.Publisher, log)
	reviewService := services.NewReviewService(reviewRepo, productRepo, deps.Publisher, log)

	validate := validation.New()
	handlers.NewAuthHandler(authService, validate, log).RegisterRoutes(app)
	handlers.NewStorefrontHandler(storefrontService, validate, log).RegisterRoutes(app)
	handlers.NewProductHandler(productService, validate, log).RegisterRoutes(app)
	handlers.NewReviewHandler(reviewService, validate, log).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes or recovered panics, in the {"error": ...} shape.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}
