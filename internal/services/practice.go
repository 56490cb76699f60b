package services

import (
	"context"
	"errors"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"mcaverse/internal/utils"
	"time"

	"gorm.io/gorm"
)

const millisPerDay = 24 * 60 * 60 * 1000

// DailyIndex 当天所有人看到同一道题：自纪元以来的天数对题库大小取模
func DailyIndex(now time.Time, poolSize int) int {
	if poolSize <= 0 {
		return 0
	}
	day := now.UnixMilli() / millisPerDay
	idx := int(day % int64(poolSize))
	if idx < 0 {
		idx += poolSize
	}
	return idx
}

type DailyQuestion struct {
	Question   models.PublicQuestion `json:"question"`
	HasSolved  bool                  `json:"hasSolved"`
	WasCorrect bool                  `json:"wasCorrect"`
	Attempts   int                   `json:"attempts"`
	Streak     int                   `json:"streak"`
}

// dailyPool 每日一题题库：easy / medium 且有正确答案，按 id 排序保证稳定
func dailyPool(conn *gorm.DB) ([]models.Question, error) {
	var candidates []models.Question
	if err := conn.Where("LOWER(difficulty) IN ?", []string{"easy", "medium"}).
		Order("id ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	pool := candidates[:0]
	for _, q := range candidates {
		if len(q.CorrectAnswers) > 0 {
			pool = append(pool, q)
		}
	}
	return pool, nil
}

// GetDailyQuestion 返回今天的题目，userID 非空时附带当天作答状态和连续天数
func GetDailyQuestion(ctx context.Context, userID string) (*DailyQuestion, error) {
	conn := db.DB.WithContext(ctx)
	pool, err := dailyPool(conn)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}

	now := utils.Now()
	q := pool[DailyIndex(now, len(pool))]
	result := &DailyQuestion{Question: q.Public()}
	if userID == "" {
		return result, nil
	}

	var solve models.DailySolve
	err = conn.Where("user_id = ? AND date = ?", userID, utils.DayKey(now)).Take(&solve).Error
	switch {
	case err == nil:
		result.HasSolved = true
		result.WasCorrect = solve.IsCorrect
		result.Attempts = solve.Attempts
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var user models.User
	err = conn.Select("id", "current_streak").Where("id = ?", userID).Take(&user).Error
	switch {
	case err == nil:
		result.Streak = user.CurrentStreak
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return result, nil
}

type SubmitResult struct {
	Success       bool   `json:"success"`
	IsCorrect     bool   `json:"isCorrect"`
	AlreadySolved bool   `json:"alreadySolved,omitempty"`
	NewStreak     int    `json:"newStreak"`
	Attempts      int    `json:"attempts"`
	PointsAwarded int    `json:"pointsAwarded"`
	Explanation   string `json:"explanation,omitempty"`
	Message       string `json:"message,omitempty"`
}

// SubmitDailyAnswer 记录当天作答；答错可以重试，答对后当天锁定
func SubmitDailyAnswer(ctx context.Context, userID, questionID string, selected int) (*SubmitResult, error) {
	var q models.Question
	if err := db.DB.WithContext(ctx).Where("id = ?", questionID).Take(&q).Error; err != nil {
		return nil, notFound(err, "question")
	}
	if selected < 0 || selected >= len(q.Options) {
		return nil, invalid("Invalid option index")
	}
	isCorrect := containsInt(q.CorrectAnswers, selected)

	now := utils.Now()
	today := utils.DayKey(now)
	var result *SubmitResult

	err := runTx(ctx, func(tx *gorm.DB) error {
		user, err := ensureUser(forUpdate(tx), userID)
		if err != nil {
			return err
		}

		var solve models.DailySolve
		err = tx.Where("user_id = ? AND date = ?", userID, today).Take(&solve).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if found && solve.IsCorrect {
			result = &SubmitResult{
				Success:       true,
				IsCorrect:     true,
				AlreadySolved: true,
				NewStreak:     user.CurrentStreak,
				Attempts:      solve.Attempts,
				Message:       "Already solved today",
			}
			return nil
		}

		attempts := solve.Attempts + 1
		if found {
			err = tx.Model(&models.DailySolve{}).
				Where("user_id = ? AND date = ?", userID, today).
				Updates(map[string]interface{}{
					"question_id":  questionID,
					"is_correct":   isCorrect,
					"attempts":     attempts,
					"submitted_at": now,
				}).Error
		} else {
			err = tx.Create(&models.DailySolve{
				UserID:      userID,
				Date:        today,
				QuestionID:  questionID,
				IsCorrect:   isCorrect,
				Attempts:    attempts,
				SubmittedAt: now,
			}).Error
		}
		if err != nil {
			return err
		}

		if err := bumpContribution(tx, userID, today); err != nil {
			return err
		}

		streak := user.CurrentStreak
		points := 0
		if isCorrect {
			streak = nextStreak(user.LastPracticeDate, user.CurrentStreak, now)
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
				"current_streak":     streak,
				"last_practice_date": now,
			}).Error; err != nil {
				return err
			}
			if err := AddPoints(tx, userID, PointsDailyCorrect, ActionDailyCorrect); err != nil {
				return err
			}
			points = PointsDailyCorrect
		}

		result = &SubmitResult{
			Success:       true,
			IsCorrect:     isCorrect,
			NewStreak:     streak,
			Attempts:      attempts,
			PointsAwarded: points,
		}
		if isCorrect {
			result.Explanation = q.Explanation
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// nextStreak 答对后的连续天数：昨天练过 +1，今天已练过不变，否则从 1 开始
func nextStreak(last *time.Time, current int, now time.Time) int {
	if last == nil {
		return 1
	}
	switch utils.DaysBetween(*last, now) {
	case 0:
		if current < 1 {
			return 1
		}
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

func bumpContribution(tx *gorm.DB, userID, day string) error {
	res := tx.Model(&models.Contribution{}).
		Where("user_id = ? AND date = ?", userID, day).
		UpdateColumn("count", gorm.Expr("count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Create(&models.Contribution{UserID: userID, Date: day, Count: 1}).Error
}

// ensureUser 第一次提交时创建用户文档
func ensureUser(tx *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := tx.Where(models.User{ID: userID}).FirstOrCreate(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCurrentStreak 读取展示用的连续天数，中断超过一天视为 0，存储值保持不变
func GetCurrentStreak(ctx context.Context, userID string) (int, error) {
	var user models.User
	err := db.DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return StreakAsOf(user.LastPracticeDate, user.CurrentStreak, utils.Now()), nil
}

func StreakAsOf(last *time.Time, stored int, now time.Time) int {
	if last == nil {
		return stored
	}
	if utils.DaysBetween(*last, now) > 1 {
		return 0
	}
	return stored
}

// PracticeHistory 贡献日历 date -> count
func PracticeHistory(ctx context.Context, userID string) (map[string]int, error) {
	var rows []models.Contribution
	if err := db.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	history := make(map[string]int, len(rows))
	for _, r := range rows {
		history[r.Date] = r.Count
	}
	return history, nil
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
