package handlers

import (
	"errors"

	apperrors "cardpay/internal/errors"
	"cardpay/internal/services/payment"
	"cardpay/internal/services/recharge"
	"cardpay/internal/utils/response"
	"cardpay/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// writeError maps service errors onto HTTP statuses. Infrastructure errors
// are logged and hidden behind a generic 500.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var verrs validation.Errors
	switch {
	case apperrors.IsNotFound(err):
		return response.NotFound(c, err.Error())
	case apperrors.IsUnauthorized(err):
		return response.Unauthorized(c, err.Error())
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verrs,
		})
	case errors.Is(err, payment.ErrInvalidAmount), errors.Is(err, recharge.ErrInvalidAmount):
		return response.ValidationError(c, err.Error())
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		return response.ServerError(c, "internal server error")
	}
}
