package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReportStatusOpen      = "open"
	ReportStatusReviewed  = "reviewed"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// QuestionReport 题目纠错
type QuestionReport struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"size:128;not null;index" json:"userId"` // Reporter
	QuestionID     string    `gorm:"size:64;not null;index" json:"questionId"`
	TestID         string    `gorm:"size:64;not null" json:"testId"`
	Category       string    `gorm:"size:30;not null" json:"category"`
	Description    string    `gorm:"size:1000;not null" json:"description"`
	QuestionNumber *int      `json:"questionNumber"`
	Status         string    `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r *QuestionReport) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
