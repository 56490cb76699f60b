package models

import (
	"time"

	"gorm.io/gorm"
)

// GuestApplication 播客嘉宾申请
type GuestApplication struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"size:200;not null;index" json:"email"`
	Social      string    `gorm:"not null" json:"social"`
	Topic       string    `gorm:"type:text;not null" json:"topic"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (g *GuestApplication) BeforeCreate(tx *gorm.DB) error {
	ensureID(&g.ID)
	return nil
}
