package services

import (
	"fmt"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"mcaverse/internal/utils"
	"strings"
	"testing"
	"time"
)

// setupTestDB 每个测试一个独立的内存库
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := db.Open(fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	prev := db.DB
	db.DB = conn
	t.Cleanup(func() {
		db.DB = prev
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

// freezeClock 固定 utils.Now
func freezeClock(t *testing.T, now time.Time) {
	t.Helper()
	prev := utils.Now
	utils.Now = func() time.Time { return now }
	t.Cleanup(func() { utils.Now = prev })
}

func mustCreate(t *testing.T, value interface{}) {
	t.Helper()
	if err := db.DB.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func createDiscussion(t *testing.T, author string) *models.Discussion {
	t.Helper()
	d := &models.Discussion{Title: "How to prepare for NIMCET", Content: "Share your plans here", AuthorID: author, AuthorName: author}
	mustCreate(t, d)
	return d
}

func loadDiscussion(t *testing.T, id string) models.Discussion {
	t.Helper()
	var d models.Discussion
	if err := db.DB.Preload("Votes").Where("id = ?", id).Take(&d).Error; err != nil {
		t.Fatalf("load discussion: %v", err)
	}
	d.FillVoteSets()
	return d
}

func question(id, subject, difficulty string, answers ...int) *models.Question {
	return &models.Question{
		ID:             id,
		QuestionText:   "Question " + id,
		Options:        []string{"A", "B", "C", "D"},
		CorrectAnswers: answers,
		Explanation:    "Because " + id,
		Subject:        subject,
		Difficulty:     difficulty,
	}
}
