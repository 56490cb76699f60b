package models

import (
	"time"
)

// DailySolve 每个用户每天（UTC 日期 YYYY-MM-DD）最多一条
type DailySolve struct {
	UserID      string    `gorm:"primaryKey;size:128" json:"userId"`
	Date        string    `gorm:"primaryKey;size:10" json:"date"`
	QuestionID  string    `gorm:"size:64" json:"questionId"`
	IsCorrect   bool      `gorm:"default:false" json:"isCorrect"`
	Attempts    int       `gorm:"default:0" json:"attempts"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Contribution 贡献日历：每天的练习次数
type Contribution struct {
	UserID string `gorm:"primaryKey;size:128" json:"userId"`
	Date   string `gorm:"primaryKey;size:10" json:"date"`
	Count  int    `gorm:"not null;default:0" json:"count"`
}
