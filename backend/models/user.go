package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
}

// UserStats хранит агрегированную статистику пользователя.
// Ровно одна строка на пользователя, создаётся вместе с ним при регистрации.
type UserStats struct {
	gorm.Model      `json:"-"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalScore      int       `gorm:"default:0" json:"total_score"`
	TotalTime       int       `gorm:"default:0" json:"total_time"`
	LevelsCompleted int       `gorm:"default:0" json:"levels_completed"`
	TotalAttempts   int       `gorm:"default:0" json:"total_attempts"`
	LastUpdated     time.Time `json:"last_updated"`
}
