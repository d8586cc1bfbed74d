package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc checks one backing service.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]PingFunc
}

func NewHealthHandler(checks map[string]PingFunc) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	services := fiber.Map{}
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			services[name] = "unavailable"
			status = fiber.StatusServiceUnavailable
			continue
		}
		services[name] = "connected"
	}

	overall := "ok"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"services": services,
	})
}
