// Package main is the entry point for the payment API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardpay/internal/config"
	"cardpay/internal/expiry"
	"cardpay/internal/logger"
	"cardpay/internal/repositories"
	"cardpay/internal/repositories/cache"
	"cardpay/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	log := logger.New(cfg.Log)

	loc, err := cfg.Cards.Location()
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Cards.Timezone).Msg("invalid card timezone")
	}
	expiry.SetDefaultLocation(loc)

	db, err := repositories.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("connected to database")

	redisClient := cache.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	cancel()

	defer func() {
		if err := repositories.Close(db); err != nil {
			log.Warn().Err(err).Msg("failed to close database connection")
		}
		if err := redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis connection")
		}
	}()

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: config.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Deps{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Log:    log,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
