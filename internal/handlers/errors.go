package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"langnghe/internal/models"
	"langnghe/internal/repositories"
	"langnghe/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// respondError maps an error onto the API's status codes and logs it.
// notFound is the message used for a 404; fallback for a 500.
func respondError(c *fiber.Ctx, err error, notFound, fallback string) error {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		logger.Debug().Err(err).Str("path", c.Path()).Msg("Request rejected")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	case errors.Is(err, errBadBody):
		logger.Debug().Err(err).Str("path", c.Path()).Msg("Request rejected")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	case errors.Is(err, repositories.ErrUnknownCategory):
		return respondError(c, fieldError("categoryId", "Category does not exist"), notFound, fallback)
	case errors.Is(err, repositories.ErrUnknownArtisan):
		return respondError(c, fieldError("artisanId", "Artisan does not exist"), notFound, fallback)
	case errors.Is(err, repositories.ErrUnknownProduct):
		return respondError(c, fieldError("productId", "Product does not exist"), notFound, fallback)
	case errors.Is(err, repositories.ErrQuantityLimit):
		return respondError(c, fieldError("quantity", fmt.Sprintf("Cart quantity cannot exceed %d", models.MaxCartQuantity)), notFound, fallback)
	case errors.Is(err, repositories.ErrNotFound):
		logger.Debug().Err(err).Str("path", c.Path()).Msg("Not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound,
		})
	case errors.Is(err, repositories.ErrDuplicate):
		logger.Info().Err(err).Str("path", c.Path()).Msg("Duplicate record")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "A record with the same unique value already exists",
		})
	default:
		logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(fallback)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
		})
	}
}

// paramID parses a positive numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 0)
	if err != nil || id == 0 {
		return 0, fieldError(name, "Must be a positive integer")
	}
	return uint(id), nil
}

// sessionParam returns the unescaped :sessionId route parameter.
func sessionParam(c *fiber.Ctx) (string, error) {
	id, err := url.PathUnescape(c.Params("sessionId"))
	if err != nil || id == "" {
		return "", fieldError("sessionId", "Must be a valid session id")
	}
	return id, nil
}
