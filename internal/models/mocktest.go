package models

import (
	"time"

	"gorm.io/gorm"
)

type MockTest struct {
	ID                string    `gorm:"primaryKey;size:64" json:"id"`
	Title             string    `gorm:"not null" json:"title"`
	Exam              string    `gorm:"size:50;index" json:"exam"`
	TestType          string    `gorm:"size:50" json:"testType"`
	DurationInMinutes int       `gorm:"default:15" json:"durationInMinutes"`
	QuestionIDs       []string  `gorm:"serializer:json" json:"question_ids"`
	Sections          []Section `gorm:"serializer:json" json:"sections,omitempty"`
	TotalMarks        float64   `json:"totalMarks,omitempty"`
	IsCustom          bool      `gorm:"default:false" json:"isCustom"`
	UserID            string    `gorm:"size:128;index" json:"userId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Section 整卷里的一个部分，题目是 QuestionIDs[StartIndex..EndIndex]（闭区间）
type Section struct {
	Name             string  `json:"name"`
	Duration         int     `json:"duration"`
	QuestionCount    int     `json:"questionCount"`
	MarksPerQuestion float64 `json:"marksPerQuestion"`
	NegativeMarks    float64 `json:"negativeMarks"`
	StartIndex       int     `json:"startIndex"`
	EndIndex         int     `json:"endIndex"`
}

func (t *MockTest) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// Attempt 一次模拟考试提交
type Attempt struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	UserID         string         `gorm:"size:128;not null;index" json:"userId"`
	TestID         string         `gorm:"size:64;not null;index" json:"testId"`
	Answers        map[string]int `gorm:"serializer:json" json:"answers"`
	Score          int            `json:"score"`
	CorrectCount   int            `json:"correctCount"`
	IncorrectCount int            `json:"incorrectCount"`
	TotalAttempted int            `json:"totalAttempted"`
	SubmittedAt    time.Time      `gorm:"index" json:"submittedAt"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
