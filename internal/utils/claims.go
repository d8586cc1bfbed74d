package utils

import (
	"errors"

	"cardpay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdminClaims extracts the claims stored by the auth middleware.
func GetAdminClaims(c *fiber.Ctx) (*models.AdminClaims, error) {
	v := c.Locals("claims")
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.AdminClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}
