package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tvules/cat-charity-fund/internal/application/usecases"
	"github.com/tvules/cat-charity-fund/internal/config"
	"github.com/tvules/cat-charity-fund/internal/domain/repositories"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/auth"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/database"
	"github.com/tvules/cat-charity-fund/internal/interfaces/http/middleware"
	"github.com/tvules/cat-charity-fund/internal/interfaces/http/routes"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize database
	db, err := database.Setup(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("error setting up database")
	}

	if err := bootstrapSuperuser(cfg, db, logger); err != nil {
		logger.Fatal().Err(err).Msg("error creating first superuser")
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	if err := routes.SetupRoutes(app, db, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("error setting up routes")
	}

	logger.Info().Str("port", cfg.Port).Msg("server is running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// bootstrapSuperuser creates the configured first superuser account when it
// does not exist yet.
func bootstrapSuperuser(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) error {
	if cfg.FirstSuperuserEmail == "" || cfg.FirstSuperuserPassword == "" {
		return nil
	}

	userRepo, err := repositories.NewUserRepository()
	if err != nil {
		return err
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTLifetime)
	userUseCase := usecases.NewUserUseCase(database.NewSessions(db), userRepo, tokens, logger)

	return userUseCase.EnsureFirstSuperuser(
		context.Background(),
		cfg.FirstSuperuserEmail,
		cfg.FirstSuperuserPassword,
	)
}
