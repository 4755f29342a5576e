package routes

import (
	"time"

	"project/backend/config"
	"project/backend/controllers"
	"project/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, catalog models.LevelCatalog) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress/:userId", progressController.GetProgress)
	app.Post("/api/progress", progressController.UpdateProgress)

	// Leaderboard routes
	leaderboardController := controllers.NewLeaderboardController(db, cfg)
	app.Get("/api/leaderboard", leaderboardController.GetLeaderboard)

	// Levels routes
	levelsController := controllers.NewLevelsController(catalog)
	app.Get("/api/levels/:topic", levelsController.GetLevels)

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
