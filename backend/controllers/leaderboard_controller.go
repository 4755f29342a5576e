package controllers

import (
	"log"
	"project/backend/config"
	"project/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLeaderboardController(db *gorm.DB, cfg *config.Config) *LeaderboardController {
	return &LeaderboardController{DB: db, Cfg: cfg}
}

// [+] GetLeaderboard godoc
// @Summary Global top 10
// @Description Returns up to 10 players ordered by total score descending
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Failure 500 {object} map[string]interface{}
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	// Порядок при равном total_score не определён - отдаём как вернула база
	entries := make([]models.LeaderboardEntry, 0, 10)
	err := lc.DB.Model(&models.User{}).
		Select("users.username, user_stats.total_score, user_stats.levels_completed, user_stats.total_time").
		Joins("JOIN user_stats ON user_stats.user_id = users.id").
		Order("user_stats.total_score DESC").
		Limit(10).
		Scan(&entries).Error
	if err != nil {
		log.Printf("leaderboard: query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leaderboard",
		})
	}

	return c.JSON(entries)
}
