package handlers_test

import (
	"mcaverse/internal/models"
	"net/http"
	"testing"
)

func TestDailyQuestion_EmptyPool(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(http.MethodGet, "/api/dpp/daily-question", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", w.Code)
	}
}

func TestDailyPractice(t *testing.T) {
	s := newTestServer(t)
	seed(t, &models.Question{
		ID:             "q1",
		QuestionText:   "2 + 2 = ?",
		Options:        []string{"3", "4", "5", "22"},
		CorrectAnswers: []int{1},
		Explanation:    "Basic addition.",
		Subject:        "Mathematics",
		Difficulty:     "easy",
	})

	var daily struct {
		Question struct {
			ID             string `json:"id"`
			CorrectAnswers []int  `json:"correct_answers"`
		} `json:"question"`
		HasSolved bool `json:"hasSolved"`
		Streak    int  `json:"streak"`
	}
	w := s.do(http.MethodGet, "/api/dpp/daily-question", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("daily: code = %d", w.Code)
	}
	decode(t, w, &daily)
	if daily.Question.ID != "q1" || daily.Question.CorrectAnswers != nil {
		t.Fatalf("daily = %+v", daily)
	}

	submit := map[string]interface{}{"userId": "alice", "questionId": "q1", "selectedOptionIndex": 0}
	if w := s.do(http.MethodPost, "/api/dpp/submit", "bob", submit); w.Code != http.StatusForbidden {
		t.Errorf("submit as someone else: code = %d, want 403", w.Code)
	}
	if w := s.do(http.MethodPost, "/api/dpp/submit", "alice", map[string]interface{}{"userId": "alice", "questionId": "q1"}); w.Code != http.StatusBadRequest {
		t.Errorf("missing option: code = %d, want 400", w.Code)
	}

	var result struct {
		IsCorrect bool `json:"isCorrect"`
		NewStreak int  `json:"newStreak"`
		Attempts  int  `json:"attempts"`
	}
	decode(t, s.do(http.MethodPost, "/api/dpp/submit", "alice", submit), &result)
	if result.IsCorrect || result.Attempts != 1 {
		t.Errorf("wrong answer = %+v", result)
	}

	submit["selectedOptionIndex"] = 1
	decode(t, s.do(http.MethodPost, "/api/dpp/submit", "alice", submit), &result)
	if !result.IsCorrect || result.NewStreak != 1 || result.Attempts != 2 {
		t.Errorf("correct answer = %+v", result)
	}

	decode(t, s.do(http.MethodGet, "/api/dpp/daily-question?userId=alice", "alice", nil), &daily)
	if !daily.HasSolved || daily.Streak != 1 {
		t.Errorf("owner view = %+v", daily)
	}
	// 别人的 userId 按匿名处理
	decode(t, s.do(http.MethodGet, "/api/dpp/daily-question?userId=alice", "bob", nil), &daily)
	if daily.HasSolved || daily.Streak != 0 {
		t.Errorf("foreign view = %+v", daily)
	}

	if w := s.do(http.MethodGet, "/api/user/streak?userId=alice", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("streak without token: code = %d, want 401", w.Code)
	}
	var streak struct {
		CurrentStreak int `json:"currentStreak"`
	}
	decode(t, s.do(http.MethodGet, "/api/user/streak?userId=alice", "alice", nil), &streak)
	if streak.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", streak.CurrentStreak)
	}

	var leaderboard []struct {
		UserName    string `json:"userName"`
		TotalPoints int    `json:"totalPoints"`
	}
	decode(t, s.do(http.MethodGet, "/api/leaderboard", "", nil), &leaderboard)
	if len(leaderboard) != 1 || leaderboard[0].TotalPoints != 10 {
		t.Errorf("leaderboard = %+v", leaderboard)
	}
}

func TestQuestionReport_Duplicate(t *testing.T) {
	s := newTestServer(t)
	body := map[string]interface{}{
		"questionId":  "q1",
		"testId":      "nimcet-2024",
		"category":    "wrong_answer",
		"description": "Option B is correct, not C.",
	}

	if w := s.do(http.MethodPost, "/api/question-reports", "", body); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: code = %d, want 401", w.Code)
	}
	if w := s.do(http.MethodPost, "/api/question-reports", "alice", body); w.Code != http.StatusOK {
		t.Fatalf("first report: code = %d body=%s", w.Code, w.Body.String())
	}
	if w := s.do(http.MethodPost, "/api/question-reports", "alice", body); w.Code != http.StatusConflict {
		t.Errorf("duplicate report: code = %d, want 409", w.Code)
	}

	body["category"] = "spelling"
	if w := s.do(http.MethodPost, "/api/question-reports", "bob", body); w.Code != http.StatusBadRequest {
		t.Errorf("unknown category: code = %d, want 400", w.Code)
	}
}

func TestProfile(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/profile?userId=ghost", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != "{}" {
		t.Fatalf("missing profile: code = %d body=%s", w.Code, w.Body.String())
	}

	update := map[string]interface{}{"userId": "alice", "name": "Alice", "college": "NIT"}
	if w := s.do(http.MethodPost, "/api/profile", "bob", update); w.Code != http.StatusForbidden {
		t.Errorf("update someone else: code = %d, want 403", w.Code)
	}
	if w := s.do(http.MethodPost, "/api/profile", "alice", update); w.Code != http.StatusOK {
		t.Fatalf("update: code = %d body=%s", w.Code, w.Body.String())
	}

	var profile struct {
		Name    string  `json:"name"`
		College *string `json:"college"`
	}
	decode(t, s.do(http.MethodGet, "/api/profile?userId=alice", "", nil), &profile)
	if profile.Name != "Alice" || profile.College == nil || *profile.College != "NIT" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestVideoProgress(t *testing.T) {
	s := newTestServer(t)
	mark := map[string]interface{}{"userId": "alice", "lectureId": "vid1", "type": "completed", "isAdding": true}

	for i := 0; i < 2; i++ {
		if w := s.do(http.MethodPost, "/api/video-progress", "alice", mark); w.Code != http.StatusOK {
			t.Fatalf("mark #%d: code = %d", i, w.Code)
		}
	}

	var progress struct {
		Completed []string `json:"completed"`
		Revision  []string `json:"revision"`
	}
	decode(t, s.do(http.MethodGet, "/api/video-progress?userId=alice", "", nil), &progress)
	if len(progress.Completed) != 1 || progress.Completed[0] != "vid1" || len(progress.Revision) != 0 {
		t.Errorf("progress = %+v", progress)
	}

	mark["isAdding"] = false
	s.do(http.MethodPost, "/api/video-progress", "alice", mark)
	decode(t, s.do(http.MethodGet, "/api/video-progress?userId=alice", "", nil), &progress)
	if len(progress.Completed) != 0 {
		t.Errorf("after unmark = %+v", progress)
	}

	mark["type"] = "favourite"
	if w := s.do(http.MethodPost, "/api/video-progress", "alice", mark); w.Code != http.StatusBadRequest {
		t.Errorf("bad type: code = %d, want 400", w.Code)
	}
}
