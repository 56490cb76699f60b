package services

import (
	"context"
	"encoding/json"
	"errors"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"strings"
	"testing"
	"time"
)

func TestDailyIndex(t *testing.T) {
	day := time.UnixMilli(1000000 * millisPerDay).UTC()
	if got := DailyIndex(day, 5); got != 0 {
		t.Errorf("DailyIndex(seed=1000000, 5) = %d, want 0", got)
	}
	// 同一天内任何时刻结果一致
	later := day.Add(23*time.Hour + 59*time.Minute)
	if got := DailyIndex(later, 5); got != 0 {
		t.Errorf("DailyIndex later same day = %d, want 0", got)
	}
	if got := DailyIndex(day.Add(24*time.Hour), 5); got != 1 {
		t.Errorf("DailyIndex next day = %d, want 1", got)
	}
	if got := DailyIndex(day, 0); got != 0 {
		t.Errorf("DailyIndex empty pool = %d, want 0", got)
	}
}

func TestGetDailyQuestion_EmptyPool(t *testing.T) {
	setupTestDB(t)
	mustCreate(t, question("q-hard", "Mathematics", "Hard", 1))
	mustCreate(t, question("q-nokey", "Mathematics", "Easy"))

	_, err := GetDailyQuestion(context.Background(), "")
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("got %v, want ErrNoQuestions", err)
	}
}

func TestGetDailyQuestion(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	// 池子：q1 q2 q3（大小写混合），q4 太难不入池
	mustCreate(t, question("q1", "Mathematics", "Easy", 0))
	mustCreate(t, question("q2", "Computer Science", "medium", 1))
	mustCreate(t, question("q3", "English", "MEDIUM", 2))
	mustCreate(t, question("q4", "Mathematics", "Hard", 3))

	day := time.UnixMilli(1000001 * millisPerDay).UTC().Add(9 * time.Hour)
	freezeClock(t, day)

	got, err := GetDailyQuestion(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	// 1000001 % 3 = 2 -> q3
	if got.Question.ID != "q3" {
		t.Errorf("question = %s, want q3", got.Question.ID)
	}
	if got.HasSolved || got.Streak != 0 {
		t.Errorf("anonymous result carries user state: %+v", got)
	}

	raw, _ := json.Marshal(got)
	if strings.Contains(string(raw), "correct_answers") || strings.Contains(string(raw), "explanation") {
		t.Errorf("response leaks answer key: %s", raw)
	}

	again, err := GetDailyQuestion(ctx, "")
	if err != nil || again.Question.ID != got.Question.ID {
		t.Errorf("second call = %v, %v; want same question", again, err)
	}
}

func TestGetDailyQuestion_UserState(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	mustCreate(t, question("q1", "Mathematics", "Easy", 0))
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	freezeClock(t, now)

	last := now.AddDate(0, 0, -5)
	mustCreate(t, &models.User{ID: "u1", CurrentStreak: 7, LastPracticeDate: &last})
	mustCreate(t, &models.DailySolve{UserID: "u1", Date: "2025-03-10", QuestionID: "q1", IsCorrect: false, Attempts: 2})

	got, err := GetDailyQuestion(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasSolved || got.WasCorrect || got.Attempts != 2 {
		t.Errorf("solve state = %+v, want hasSolved=true wasCorrect=false attempts=2", got)
	}
	// 存储值原样返回，不做连续性判断
	if got.Streak != 7 {
		t.Errorf("streak = %d, want stored 7", got.Streak)
	}

	other, err := GetDailyQuestion(ctx, "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if other.HasSolved || other.Streak != 0 {
		t.Errorf("unknown user state = %+v", other)
	}
}

func TestGetCurrentStreak(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	freezeClock(t, now)

	threeDaysAgo := now.AddDate(0, 0, -3)
	// 前一天深夜，按日历算只差一天
	yesterdayLate := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	mustCreate(t, &models.User{ID: "broken", CurrentStreak: 12, LastPracticeDate: &threeDaysAgo})
	mustCreate(t, &models.User{ID: "alive", CurrentStreak: 4, LastPracticeDate: &yesterdayLate})
	mustCreate(t, &models.User{ID: "fresh"})

	tests := []struct {
		user string
		want int
	}{
		{"broken", 0},
		{"alive", 4},
		{"fresh", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got, err := GetCurrentStreak(ctx, tt.user)
		if err != nil {
			t.Fatalf("%s: %v", tt.user, err)
		}
		if got != tt.want {
			t.Errorf("GetCurrentStreak(%s) = %d, want %d", tt.user, got, tt.want)
		}
	}

	// 读路径不改存储值
	var u models.User
	db.DB.Where("id = ?", "broken").Take(&u)
	if u.CurrentStreak != 12 {
		t.Errorf("stored streak changed to %d", u.CurrentStreak)
	}
}

func TestStreakAsOf_NoDate(t *testing.T) {
	if got := StreakAsOf(nil, 3, time.Now()); got != 3 {
		t.Errorf("StreakAsOf(nil, 3) = %d, want 3", got)
	}
}

func TestSubmitDailyAnswer(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	mustCreate(t, question("q1", "Mathematics", "Easy", 2))

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	freezeClock(t, day1)

	res, err := SubmitDailyAnswer(ctx, "u1", "q1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect || res.Attempts != 1 || res.NewStreak != 0 || res.PointsAwarded != 0 {
		t.Errorf("wrong answer result = %+v", res)
	}

	res, err = SubmitDailyAnswer(ctx, "u1", "q1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect || res.Attempts != 2 || res.NewStreak != 1 || res.PointsAwarded != PointsDailyCorrect {
		t.Errorf("correct answer result = %+v", res)
	}

	res, err = SubmitDailyAnswer(ctx, "u1", "q1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.AlreadySolved || !res.IsCorrect || res.NewStreak != 1 {
		t.Errorf("resubmit result = %+v, want alreadySolved", res)
	}

	var user models.User
	db.DB.Where("id = ?", "u1").Take(&user)
	if user.TotalPoints != PointsDailyCorrect || user.CurrentStreak != 1 {
		t.Errorf("user after day 1 = points %d streak %d", user.TotalPoints, user.CurrentStreak)
	}

	history, err := PracticeHistory(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if history["2025-03-10"] != 2 {
		t.Errorf("history = %v, want 2 on 2025-03-10", history)
	}

	// 第二天继续
	freezeClock(t, day1.AddDate(0, 0, 1))
	res, err = SubmitDailyAnswer(ctx, "u1", "q1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.NewStreak != 2 {
		t.Errorf("day 2 streak = %d, want 2", res.NewStreak)
	}

	// 中断两天后从 1 开始
	freezeClock(t, day1.AddDate(0, 0, 4))
	res, err = SubmitDailyAnswer(ctx, "u1", "q1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.NewStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", res.NewStreak)
	}

	var logs int64
	db.DB.Model(&models.PointLog{}).Where("user_id = ?", "u1").Count(&logs)
	if logs != 3 {
		t.Errorf("point logs = %d, want 3", logs)
	}
}

func TestSubmitDailyAnswer_Errors(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	mustCreate(t, question("q1", "Mathematics", "Easy", 2))

	if _, err := SubmitDailyAnswer(ctx, "u1", "missing", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing question: got %v", err)
	}
	if _, err := SubmitDailyAnswer(ctx, "u1", "q1", 4); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("out of range option: got %v", err)
	}
	if _, err := SubmitDailyAnswer(ctx, "u1", "q1", -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative option: got %v", err)
	}

	var count int64
	db.DB.Model(&models.DailySolve{}).Count(&count)
	if count != 0 {
		t.Errorf("solve records = %d after rejected submissions", count)
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := now.Add(-2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	old := now.AddDate(0, 0, -2)

	tests := []struct {
		name    string
		last    *time.Time
		current int
		want    int
	}{
		{"first ever", nil, 0, 1},
		{"same day", &today, 3, 3},
		{"yesterday", &yesterday, 3, 4},
		{"gap", &old, 3, 1},
	}
	for _, tt := range tests {
		if got := nextStreak(tt.last, tt.current, now); got != tt.want {
			t.Errorf("%s: nextStreak = %d, want %d", tt.name, got, tt.want)
		}
	}
}
