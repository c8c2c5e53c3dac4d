package handlers

import (
	"errors"

	"marketplace/internal/apperror"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgInternalServer = "Internal server error"
)

// errorStatus maps an error kind to its HTTP status. Uniqueness conflicts
// are client errors reported as 400.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError sends {"error": message}. Unclassified errors are logged and
// reported with a generic message.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": apperror.Message(err, msgInternalServer),
	})
}

// parseBody decodes the JSON body into payload and validates it.
func parseBody(c *fiber.Ctx, v *validation.Validator, payload interface{}) error {
	if err := c.BodyParser(payload); err != nil {
		return apperror.Validation(msgInvalidBody)
	}
	return v.Struct(payload)
}

// productIDParam reads the :product_id path parameter.
func productIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("product_id")
	if err != nil || id < 1 {
		return 0, apperror.Validation("Invalid product_id")
	}
	return uint(id), nil
}
