package models

import (
	"time"
)

// User 的 ID 即认证服务签发的 uid，不在本地生成
type User struct {
	ID               string     `gorm:"primaryKey;size:128" json:"id"`
	Name             string     `gorm:"size:100" json:"name"`
	PhotoURL         string     `json:"photoURL"`
	College          string     `json:"college,omitempty"`
	Course           string     `json:"course,omitempty"`
	Location         string     `json:"location,omitempty"`
	Bio              string     `gorm:"size:500" json:"bio,omitempty"`
	LinkedIn         string     `gorm:"column:linkedin" json:"linkedin,omitempty"`
	GitHub           string     `gorm:"column:github" json:"github,omitempty"`
	CurrentStreak    int        `gorm:"default:0" json:"currentStreak"`
	LastPracticeDate *time.Time `json:"lastPracticeDate"`
	TotalPoints      int        `gorm:"default:0;index" json:"totalPoints"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
