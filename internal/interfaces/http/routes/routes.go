package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tvules/cat-charity-fund/internal/application/services/report"
	"github.com/tvules/cat-charity-fund/internal/application/usecases"
	"github.com/tvules/cat-charity-fund/internal/config"
	"github.com/tvules/cat-charity-fund/internal/domain/repositories"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/auth"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/database"
	"github.com/tvules/cat-charity-fund/internal/interfaces/http/handlers"
	"github.com/tvules/cat-charity-fund/internal/interfaces/http/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	projectRepo, err := repositories.NewCharityProjectRepository()
	if err != nil {
		return err
	}
	donationRepo, err := repositories.NewDonationRepository()
	if err != nil {
		return err
	}
	userRepo, err := repositories.NewUserRepository()
	if err != nil {
		return err
	}

	sessions := database.NewSessions(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTLifetime)

	var reportService *report.Service
	if cfg.GoogleCredentialsFile != "" {
		reportService, err = report.NewService(context.Background(), cfg.GoogleCredentialsFile, cfg.GoogleShareEmail, logger)
		if err != nil {
			return err
		}
	}

	// Use Cases
	projectUseCase := usecases.NewCharityProjectUseCase(sessions, projectRepo, donationRepo, logger)
	donationUseCase := usecases.NewDonationUseCase(sessions, donationRepo, projectRepo, logger)
	userUseCase := usecases.NewUserUseCase(sessions, userRepo, tokens, logger)
	reportUseCase := usecases.NewReportUseCase(sessions, projectRepo, reportService)

	// Handlers
	projectHandler := handlers.NewCharityProjectHandler(projectUseCase)
	donationHandler := handlers.NewDonationHandler(donationUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	authRequired := middleware.NewAuth(tokens, userUseCase)
	superuserOnly := middleware.RequireSuperuser()

	// Auth routes
	authGroup := app.Group("/auth")
	authGroup.Post("/register", userHandler.Register)
	authGroup.Post("/jwt/login", userHandler.Login)

	// Charity project routes
	projects := app.Group("/charity_project")
	projects.Get("/", projectHandler.GetProjects)
	projects.Post("/", authRequired, superuserOnly, projectHandler.CreateProject)
	projects.Patch("/:id", authRequired, superuserOnly, projectHandler.UpdateProject)
	projects.Delete("/:id", authRequired, superuserOnly, projectHandler.DeleteProject)

	// Donation routes
	donations := app.Group("/donation", authRequired)
	donations.Post("/", donationHandler.CreateDonation)
	donations.Get("/my", donationHandler.GetMyDonations)
	donations.Get("/", superuserOnly, donationHandler.GetDonations)

	// Report routes
	app.Get("/google", authRequired, superuserOnly, reportHandler.GetReport)

	return nil
}
