package models

import (
	"time"

	"gorm.io/gorm"
)

// GameProgress - запись прогресса по уровню: лучшие метрики и число попыток.
// Уникальна по (user_id, data_structure, level_id), никогда не удаляется.
type GameProgress struct {
	gorm.Model    `json:"-"`
	UserID        uint      `gorm:"uniqueIndex:idx_user_ds_level;not null" json:"user_id"`
	DataStructure string    `gorm:"uniqueIndex:idx_user_ds_level;not null" json:"data_structure"`
	LevelID       int       `gorm:"uniqueIndex:idx_user_ds_level;not null" json:"level_id"`
	Completed     bool      `gorm:"default:false" json:"completed"`
	BestScore     int       `gorm:"default:0" json:"best_score"`
	BestTime      int       `gorm:"default:0" json:"best_time"`
	BestMoves     int       `gorm:"default:0" json:"best_moves"`
	Attempts      int       `gorm:"default:0" json:"attempts"`
	LastPlayed    time.Time `json:"last_played"`
}

// DataStructureProgress - сводка по одной теме (GROUP BY data_structure)
type DataStructureProgress struct {
	DataStructure   string `json:"data_structure"`
	TotalLevels     int    `json:"total_levels"`
	CompletedLevels int    `json:"completed_levels"`
	TotalDSScore    int    `json:"total_ds_score"`
}

// LeaderboardEntry - строка глобального топа (join users + user_stats)
type LeaderboardEntry struct {
	Username        string `json:"username"`
	TotalScore      int    `json:"total_score"`
	LevelsCompleted int    `json:"levels_completed"`
	TotalTime       int    `json:"total_time"`
}
