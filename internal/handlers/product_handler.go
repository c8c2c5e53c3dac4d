package handlers

import (
	"strconv"

	"marketplace/internal/apperror"
	"marketplace/internal/models"
	"marketplace/internal/services"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
	log      zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validation.Validator, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/products/:product_id", h.HandleGetProduct)
}

// HandleCreateProduct lists a new product in an existing storefront.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req services.CreateProductInput
	if err := parseBody(c, h.validate, &req); err != nil {
		return writeError(c, h.log, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product.ToResponse())
}

// HandleListProducts returns the products matching the optional name,
// min_price and max_price query parameters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := models.ProductFilter{Name: c.Query("name")}

	var err error
	if filter.MinPrice, err = priceQuery(c, "min_price"); err != nil {
		return writeError(c, h.log, err)
	}
	if filter.MaxPrice, err = priceQuery(c, "max_price"); err != nil {
		return writeError(c, h.log, err)
	}

	products, err := h.service.ListProducts(c.UserContext(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(models.ProductsToResponse(products))
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := productIDParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(product.ToResponse())
}

// priceQuery parses an optional numeric query parameter. Absent or empty
// values yield nil.
func priceQuery(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.Validation("Invalid " + key)
	}
	return &value, nil
}
