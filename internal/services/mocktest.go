package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"mcaverse/internal/utils"
	"sort"

	"gorm.io/gorm"
)

// 评分规则：答对 +4，答错 -1，未答 0
const (
	marksCorrect   = 4
	marksIncorrect = -1
)

type TestView struct {
	Test      models.MockTest         `json:"test"`
	Questions []models.PublicQuestion `json:"questions"`
}

// loadQuestions 按 ids 的顺序返回题目，不存在的 id 直接跳过
func loadQuestions(conn *gorm.DB, ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return []models.Question{}, nil
	}
	var found []models.Question
	if err := conn.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}
	ordered := make([]models.Question, 0, len(found))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

// GetTestView 作答页：题目按试卷顺序，不含答案
func GetTestView(ctx context.Context, testID string) (*TestView, error) {
	conn := db.DB.WithContext(ctx)
	var t models.MockTest
	if err := conn.Where("id = ?", testID).Take(&t).Error; err != nil {
		return nil, notFound(err, "mock test")
	}
	questions, err := loadQuestions(conn, t.QuestionIDs)
	if err != nil {
		return nil, err
	}
	view := &TestView{Test: t, Questions: make([]models.PublicQuestion, 0, len(questions))}
	for _, q := range questions {
		view.Questions = append(view.Questions, q.Public())
	}
	return view, nil
}

type ResultsView struct {
	Test      models.MockTest   `json:"test"`
	Attempt   AttemptSummary    `json:"attempt"`
	Answers   map[string]int    `json:"answers"`
	Questions []models.Question `json:"questions"`
}

// GetResults 成绩页：包含答案和解析，只有本人可以查看
func GetResults(ctx context.Context, testID, attemptID, userID string) (*ResultsView, error) {
	conn := db.DB.WithContext(ctx)
	var a models.Attempt
	if err := conn.Where("id = ?", attemptID).Take(&a).Error; err != nil {
		return nil, notFound(err, "attempt")
	}
	if a.TestID != testID {
		return nil, fmt.Errorf("attempt %s does not belong to test %s: %w", attemptID, testID, ErrNotFound)
	}
	if a.UserID != userID {
		return nil, ErrForbidden
	}

	var t models.MockTest
	if err := conn.Where("id = ?", testID).Take(&t).Error; err != nil {
		return nil, notFound(err, "mock test")
	}
	questions, err := loadQuestions(conn, t.QuestionIDs)
	if err != nil {
		return nil, err
	}

	answers := a.Answers
	if answers == nil {
		answers = map[string]int{}
	}
	return &ResultsView{
		Test: t,
		Attempt: AttemptSummary{
			ID:             a.ID,
			TestID:         a.TestID,
			TestTitle:      t.Title,
			Score:          a.Score,
			CorrectCount:   a.CorrectCount,
			IncorrectCount: a.IncorrectCount,
			TotalAttempted: a.TotalAttempted,
			SubmittedAt:    utils.ISOTime(a.SubmittedAt),
		},
		Answers:   answers,
		Questions: questions,
	}, nil
}

// ScoreAnswers 以第一个正确答案为准计分；找不到题目的作答算错
func ScoreAnswers(answers map[string]int, key map[string]int) (correct, incorrect, score int) {
	for qid, chosen := range answers {
		if right, ok := key[qid]; ok && right == chosen {
			correct++
		} else {
			incorrect++
		}
	}
	score = correct*marksCorrect + incorrect*marksIncorrect
	return correct, incorrect, score
}

// answerKey questionId -> 第一个正确答案
func answerKey(conn *gorm.DB, ids []string) (map[string]int, error) {
	key := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return key, nil
	}
	var questions []models.Question
	if err := conn.Select("id", "subject", "correct_answers").Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	for _, q := range questions {
		if len(q.CorrectAnswers) > 0 {
			key[q.ID] = q.CorrectAnswers[0]
		}
	}
	return key, nil
}

// SubmitAttempt 计分并保存一次作答，提交时间取服务器时间
func SubmitAttempt(ctx context.Context, userID, testID string, answers map[string]int) (*models.Attempt, error) {
	conn := db.DB.WithContext(ctx)
	if answers == nil {
		answers = map[string]int{}
	}
	ids := make([]string, 0, len(answers))
	for qid := range answers {
		ids = append(ids, qid)
	}
	key, err := answerKey(conn, ids)
	if err != nil {
		return nil, err
	}

	correct, incorrect, score := ScoreAnswers(answers, key)
	attempt := &models.Attempt{
		UserID:         userID,
		TestID:         testID,
		Answers:        answers,
		Score:          score,
		CorrectCount:   correct,
		IncorrectCount: incorrect,
		TotalAttempted: len(answers),
		SubmittedAt:    utils.Now(),
	}
	if err := conn.Create(attempt).Error; err != nil {
		return nil, err
	}
	return attempt, nil
}

type CustomTestRequest struct {
	UserID       string
	Subject      string
	Topic        string
	NumQuestions int
	Duration     int
}

// shuffledQuestionIDs 某科目（可选专题）全部题目 id，随机顺序
func shuffledQuestionIDs(conn *gorm.DB, subject, topic string) ([]string, error) {
	query := conn.Model(&models.Question{}).Where("subject = ?", subject)
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	var ids []string
	if err := query.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids, nil
}

// CreateCustomTest 从指定科目（可选专题）随机抽题组卷
func CreateCustomTest(ctx context.Context, req CustomTestRequest) (*models.MockTest, error) {
	conn := db.DB.WithContext(ctx)
	ids, err := shuffledQuestionIDs(conn, req.Subject, req.Topic)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no questions for %s: %w", req.Subject, ErrNotFound)
	}
	if len(ids) < req.NumQuestions {
		return nil, invalid(fmt.Sprintf("Only found %d questions. Please select a smaller number.", len(ids)))
	}

	t := &models.MockTest{
		Title:             "Custom: " + req.Subject,
		Exam:              "custom",
		TestType:          "subject-wise",
		DurationInMinutes: req.Duration,
		QuestionIDs:       ids[:req.NumQuestions],
		IsCustom:          true,
		UserID:            req.UserID,
	}
	if req.Topic != "" {
		t.Title += " - " + req.Topic
		t.TestType = "topic-wise"
	}
	if err := conn.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

type SectionConfig struct {
	Subject  string
	Count    int
	Duration int
	Marks    float64
	Negative float64
}

type FullLengthConfig struct {
	Title    string
	Exam     string
	Duration int
	Sections []SectionConfig
}

// NIMCETFullLength NIMCET 整卷：120 分钟，满分 960
var NIMCETFullLength = FullLengthConfig{
	Title:    "NIMCET Full Length Mock Test - 01",
	Exam:     "nimcet",
	Duration: 120,
	Sections: []SectionConfig{
		{Subject: "Mathematics", Count: 50, Duration: 70, Marks: 12, Negative: 3},
		{Subject: "Logical Reasoning", Count: 40, Duration: 30, Marks: 6, Negative: 1.5},
		{Subject: "Computer Awareness", Count: 10, Duration: 10, Marks: 4, Negative: 1},
		{Subject: "General English", Count: 20, Duration: 10, Marks: 4, Negative: 1},
	},
}

// GenerateFullLengthTest 按分区配置抽题组成整卷，任一分区题目不够就不创建
func GenerateFullLengthTest(ctx context.Context, cfg FullLengthConfig) (*models.MockTest, error) {
	conn := db.DB.WithContext(ctx)
	t := &models.MockTest{
		Title:             cfg.Title,
		Exam:              cfg.Exam,
		TestType:          "full-length",
		DurationInMinutes: cfg.Duration,
		QuestionIDs:       make([]string, 0),
		Sections:          make([]models.Section, 0, len(cfg.Sections)),
	}

	for _, sc := range cfg.Sections {
		ids, err := shuffledQuestionIDs(conn, sc.Subject, "")
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, invalid(fmt.Sprintf("No questions found for subject: %s. Please seed the database first.", sc.Subject))
		}
		if len(ids) < sc.Count {
			return nil, invalid(fmt.Sprintf("Not enough questions for %s. Required: %d, Found: %d", sc.Subject, sc.Count, len(ids)))
		}

		start := len(t.QuestionIDs)
		t.QuestionIDs = append(t.QuestionIDs, ids[:sc.Count]...)
		t.Sections = append(t.Sections, models.Section{
			Name:             sc.Subject,
			Duration:         sc.Duration,
			QuestionCount:    sc.Count,
			MarksPerQuestion: sc.Marks,
			NegativeMarks:    sc.Negative,
			StartIndex:       start,
			EndIndex:         len(t.QuestionIDs) - 1,
		})
		t.TotalMarks += float64(sc.Count) * sc.Marks
	}

	if err := conn.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

type SubjectScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// SubjectPerformance 汇总所有作答，按科目计算正确率
func SubjectPerformance(ctx context.Context, userID string) ([]SubjectScore, error) {
	conn := db.DB.WithContext(ctx)
	var attempts []models.Attempt
	if err := conn.Select("id", "answers").Where("user_id = ?", userID).Find(&attempts).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, a := range attempts {
		for qid := range a.Answers {
			if !seen[qid] {
				seen[qid] = true
				ids = append(ids, qid)
			}
		}
	}
	out := make([]SubjectScore, 0)
	if len(ids) == 0 {
		return out, nil
	}

	var questions []models.Question
	if err := conn.Select("id", "subject", "correct_answers").Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	type meta struct {
		subject string
		answer  int
	}
	lookup := make(map[string]meta, len(questions))
	for _, q := range questions {
		if q.Subject != "" && len(q.CorrectAnswers) > 0 {
			lookup[q.ID] = meta{subject: q.Subject, answer: q.CorrectAnswers[0]}
		}
	}

	type tally struct{ correct, total int }
	stats := make(map[string]*tally)
	for _, a := range attempts {
		for qid, chosen := range a.Answers {
			m, ok := lookup[qid]
			if !ok {
				continue
			}
			s := stats[m.subject]
			if s == nil {
				s = &tally{}
				stats[m.subject] = s
			}
			s.total++
			if chosen == m.answer {
				s.correct++
			}
		}
	}

	for name, s := range stats {
		out = append(out, SubjectScore{
			Name:  name,
			Score: int(math.Round(float64(s.correct) / float64(s.total) * 100)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
