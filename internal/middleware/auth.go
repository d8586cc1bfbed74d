// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"strings"

	"cardpay/internal/config"
	"cardpay/internal/utils"
	"cardpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AuthMiddleware validates bearer tokens for the administrative routes.
type AuthMiddleware struct {
	cfg config.AuthConfig
	log zerolog.Logger
}

func NewAuthMiddleware(cfg config.AuthConfig, log zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		cfg: cfg,
		log: log.With().Str("component", "auth").Logger(),
	}
}

// Handler validates the JWT in the Authorization header and stores the
// claims in the request locals.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "invalid authorization format")
	}

	claims, err := utils.ParseToken(m.cfg, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		m.log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
		return response.Unauthorized(c, "invalid token")
	}

	c.Locals("claims", claims)
	return c.Next()
}

// AdminOnly must run after Handler.
func AdminOnly(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	if !claims.IsAdmin() {
		return response.Forbidden(c, "insufficient permissions")
	}

	return c.Next()
}
