package controllers

import (
	"errors"
	"log"
	"project/backend/config"
	"project/backend/models"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// [+] UpdateProgress godoc
// @Summary Submit a level attempt
// @Description Reconciles best metrics for the level and rolls the attempt into user stats
// @Tags progress
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Attempt data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /progress [post]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	type ProgressInput struct {
		UserID        uint   `json:"user_id"`
		DataStructure string `json:"data_structure"`
		LevelID       int    `json:"level_id"`
		Completed     bool   `json:"completed"`
		Score         int    `json:"score"`
		TimeTaken     int    `json:"time_taken"`
		Moves         int    `json:"moves"`
	}

	var input ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.UserID == 0 || input.DataStructure == "" || input.LevelID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	// Запись леджера и статистика обновляются строго в одной транзакции,
	// иначе конкурентные сабмиты теряют read-modify-write лучших метрик.
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ? AND data_structure = ? AND level_id = ?",
			input.UserID, input.DataStructure, input.LevelID)
		if tx.Dialector.Name() == "postgres" {
			// строчная блокировка; sqlite сериализует писателей сам
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var existing models.GameProgress
		err := query.First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record := models.GameProgress{
				UserID:        input.UserID,
				DataStructure: input.DataStructure,
				LevelID:       input.LevelID,
				Completed:     input.Completed,
				BestScore:     input.Score,
				BestTime:      input.TimeTaken,
				BestMoves:     input.Moves,
				Attempts:      1,
				LastPlayed:    time.Now(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			newBestScore := existing.BestScore
			if input.Score > newBestScore {
				newBestScore = input.Score
			}
			// 0 означает "не передано": и для входа, и для хранимого
			// значения; минимум считается только по положительным
			newBestTime := existing.BestTime
			if input.TimeTaken > 0 && (newBestTime == 0 || input.TimeTaken < newBestTime) {
				newBestTime = input.TimeTaken
			}
			newBestMoves := existing.BestMoves
			if input.Moves > 0 && (newBestMoves == 0 || input.Moves < newBestMoves) {
				newBestMoves = input.Moves
			}

			// completed перезаписывается как есть: регресс true -> false
			// допустим и сохранён из исходного поведения
			updates := map[string]interface{}{
				"completed":   input.Completed,
				"best_score":  newBestScore,
				"best_time":   newBestTime,
				"best_moves":  newBestMoves,
				"attempts":    gorm.Expr("attempts + 1"),
				"last_played": time.Now(),
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}

		// levels_completed растёт на каждом завершённом сабмите,
		// включая повторы уже пройденного уровня - как в исходнике
		statsUpdates := map[string]interface{}{
			"total_attempts": gorm.Expr("total_attempts + 1"),
			"last_updated":   time.Now(),
		}
		if input.Completed {
			statsUpdates["total_score"] = gorm.Expr("total_score + ?", input.Score)
			statsUpdates["total_time"] = gorm.Expr("total_time + ?", input.TimeTaken)
			statsUpdates["levels_completed"] = gorm.Expr("levels_completed + 1")
		}

		return tx.Model(&models.UserStats{}).
			Where("user_id = ?", input.UserID).
			Updates(statsUpdates).Error
	})
	if err != nil {
		log.Printf("progress: update failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update progress",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Progress updated successfully",
	})
}

// [+] GetProgress godoc
// @Summary Get user progress
// @Description Returns stats, per data structure summary and all level records
// @Tags progress
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /progress/{userId} [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	// Get user stats; a user without submissions gets zeroed defaults
	var statsPayload interface{}
	var stats models.UserStats
	if err := pc.DB.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("progress: stats query failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch progress",
			})
		}
		statsPayload = fiber.Map{
			"total_score":      0,
			"total_time":       0,
			"levels_completed": 0,
			"total_attempts":   0,
		}
	} else {
		statsPayload = stats
	}

	// Per data structure summary
	dsProgress := make([]models.DataStructureProgress, 0)
	err = pc.DB.Model(&models.GameProgress{}).
		Select("data_structure, COUNT(*) as total_levels, SUM(CASE WHEN completed THEN 1 ELSE 0 END) as completed_levels, SUM(best_score) as total_ds_score").
		Where("user_id = ?", userID).
		Group("data_structure").
		Scan(&dsProgress).Error
	if err != nil {
		log.Printf("progress: summary query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch progress",
		})
	}

	// All level records
	allProgress := make([]models.GameProgress, 0)
	if err := pc.DB.Where("user_id = ?", userID).Find(&allProgress).Error; err != nil {
		log.Printf("progress: records query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch progress",
		})
	}

	return c.JSON(fiber.Map{
		"stats":                   statsPayload,
		"data_structure_progress": dsProgress,
		"all_progress":            allProgress,
	})
}
