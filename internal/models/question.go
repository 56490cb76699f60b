package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	QuestionText   string    `gorm:"type:text" json:"question_text"`
	Options        []string  `gorm:"serializer:json" json:"options"`
	CorrectAnswers []int     `gorm:"serializer:json" json:"correct_answers"`
	Explanation    string    `gorm:"type:text" json:"explanation"`
	Subject        string    `gorm:"size:100;index" json:"subject"`
	Topic          string    `gorm:"size:100;index" json:"topic"`
	Difficulty     string    `gorm:"size:20;index" json:"difficulty"`
	CreatedAt      time.Time `json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

// PublicQuestion 不含答案和解析，用于答题前下发
type PublicQuestion struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Subject      string   `json:"subject"`
	Topic        string   `json:"topic,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
}

func (q Question) Public() PublicQuestion {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	return PublicQuestion{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Options:      options,
		Subject:      q.Subject,
		Topic:        q.Topic,
		Difficulty:   q.Difficulty,
	}
}
