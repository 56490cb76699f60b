package services

import (
	"context"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"mcaverse/internal/utils"
)

const (
	LeaderboardSize = 10
	anonymousName   = "Anonymous"
	unknownTest     = "Unknown Test"
)

type LeaderboardEntry struct {
	ID          string  `json:"id"`
	UserName    string  `json:"userName"`
	TotalPoints int     `json:"totalPoints"`
	PhotoURL    *string `json:"photoURL"`
}

// Leaderboard 积分前十
func Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var users []models.User
	if err := db.DB.WithContext(ctx).
		Select("id", "name", "photo_url", "total_points").
		Order("total_points DESC, id ASC").
		Limit(LeaderboardSize).
		Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		e := LeaderboardEntry{ID: u.ID, UserName: u.Name, TotalPoints: u.TotalPoints}
		if e.UserName == "" {
			e.UserName = anonymousName
		}
		if u.PhotoURL != "" {
			photo := u.PhotoURL
			e.PhotoURL = &photo
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type AttemptSummary struct {
	ID             string `json:"id"`
	TestID         string `json:"testId"`
	TestTitle      string `json:"testTitle"`
	Score          int    `json:"score"`
	CorrectCount   int    `json:"correctCount"`
	IncorrectCount int    `json:"incorrectCount"`
	TotalAttempted int    `json:"totalAttempted"`
	SubmittedAt    string `json:"submittedAt"`
}

// AttemptHistory 最近的考试记录，按提交时间倒序；limit<=0 表示全部
func AttemptHistory(ctx context.Context, userID string, limit int) ([]AttemptSummary, error) {
	conn := db.DB.WithContext(ctx)
	query := conn.Where("user_id = ?", userID).Order("submitted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var attempts []models.Attempt
	if err := query.Find(&attempts).Error; err != nil {
		return nil, err
	}

	// 批量查试卷标题，避免 N+1
	titles := make(map[string]string)
	if len(attempts) > 0 {
		ids := make([]string, 0, len(attempts))
		for _, a := range attempts {
			ids = append(ids, a.TestID)
		}
		var tests []models.MockTest
		if err := conn.Select("id", "title").Where("id IN ?", ids).Find(&tests).Error; err != nil {
			return nil, err
		}
		for _, t := range tests {
			titles[t.ID] = t.Title
		}
	}

	out := make([]AttemptSummary, 0, len(attempts))
	for _, a := range attempts {
		title := titles[a.TestID]
		if title == "" {
			title = unknownTest
		}
		out = append(out, AttemptSummary{
			ID:             a.ID,
			TestID:         a.TestID,
			TestTitle:      title,
			Score:          a.Score,
			CorrectCount:   a.CorrectCount,
			IncorrectCount: a.IncorrectCount,
			TotalAttempted: a.TotalAttempted,
			SubmittedAt:    utils.ISOTime(a.SubmittedAt),
		})
	}
	return out, nil
}
