// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and mounts them on the app.
package routes

import (
	"context"
	"time"

	"cardpay/internal/config"
	"cardpay/internal/handlers"
	"cardpay/internal/middleware"
	"cardpay/internal/repositories"
	"cardpay/internal/repositories/cache"
	"cardpay/internal/services/balance"
	"cardpay/internal/services/credential"
	"cardpay/internal/services/payment"
	"cardpay/internal/services/recharge"
	"cardpay/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deps are the process-wide resources the routes are built from.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Log    zerolog.Logger
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, d Deps) {
	cacheService := cache.NewCacheService(d.Redis, d.Config.Redis.BusinessTTL)

	// Initialize repositories
	cardRepo := repositories.NewCardRepository(d.DB)
	businessRepo := repositories.NewCachedBusinessRepository(
		repositories.NewBusinessRepository(d.DB),
		cacheService,
		d.Log,
	)
	paymentRepo := repositories.NewPaymentRepository(d.DB)
	rechargeRepo := repositories.NewRechargeRepository(d.DB)

	// Initialize services
	balanceService := balance.NewService(cardRepo, paymentRepo, rechargeRepo)
	rechargeService := recharge.NewService(cardRepo, rechargeRepo, d.Log)
	paymentService := payment.NewService(
		cardRepo,
		businessRepo,
		balanceService,
		paymentRepo,
		credential.NewBcryptVerifier(),
		d.Log,
		payment.WithLocker(cache.NewSettlementLock(d.Redis, d.Config.Redis.SettlementTTL, d.Log)),
	)

	// Initialize handlers
	v := validation.New()
	paymentHandler := handlers.NewPaymentHandler(paymentService, v, d.Log)
	cardHandler := handlers.NewCardHandler(balanceService, d.Log)
	adminHandler := handlers.NewAdminHandler(rechargeService, v, d.Log)
	healthHandler := handlers.NewHealthHandler(map[string]handlers.PingFunc{
		"database": func(ctx context.Context) error {
			sqlDB, err := d.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": cacheService.HealthCheck,
	})

	app.Get("/health", healthHandler.HealthCheck)

	payments := app.Group("/payments", limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))
	payments.Post("/point-of-sale", paymentHandler.PointOfSale)
	payments.Post("/online", paymentHandler.Online)

	app.Get("/cards/:id/balance", cardHandler.GetBalance)

	auth := middleware.NewAuthMiddleware(d.Config.Auth, d.Log)
	admin := app.Group("/admin", auth.Handler, middleware.AdminOnly)
	admin.Post("/cards/:id/recharges", adminHandler.RechargeCard)
}
