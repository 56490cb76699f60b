package handlers

import (
	"mcaverse/internal/middleware"
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

const recentAttemptsLimit = 5

type MockTestHandler struct {
	fullLength services.FullLengthConfig
}

func NewMockTestHandler(fullLength services.FullLengthConfig) *MockTestHandler {
	return &MockTestHandler{fullLength: fullLength}
}

type submitAttemptRequest struct {
	UserID  string         `json:"userId" binding:"required"`
	TestID  string         `json:"testId" binding:"required"`
	Answers map[string]int `json:"answers" binding:"required"`
}

type customTestRequest struct {
	Subject      string `json:"subject" binding:"required"`
	Topic        string `json:"topic"`
	NumQuestions int    `json:"numQuestions" binding:"required,min=5,max=50"`
	Duration     int    `json:"duration" binding:"required,min=10,max=120"`
	UserID       string `json:"userId" binding:"required"`
}

// Show 作答页数据
func (h *MockTestHandler) Show(c *gin.Context) {
	view, err := services.GetTestView(c.Request.Context(), c.Param("testId"))
	if err != nil {
		respondError(c, err, "Test not found.", "Failed to fetch test.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Results 成绩页，只能看自己的
func (h *MockTestHandler) Results(c *gin.Context) {
	view, err := services.GetResults(c.Request.Context(), c.Param("testId"), c.Param("attemptId"), middleware.CurrentUID(c))
	if err != nil {
		respondError(c, err, "Result not found.", "Failed to fetch results.")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *MockTestHandler) Submit(c *gin.Context) {
	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data provided."})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	attempt, err := services.SubmitAttempt(c.Request.Context(), req.UserID, req.TestID, req.Answers)
	if err != nil {
		respondError(c, err, "", "Failed to submit the test.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "attemptId": attempt.ID, "score": attempt.Score})
}

func (h *MockTestHandler) CreateCustom(c *gin.Context) {
	var req customTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input."})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	t, err := services.CreateCustomTest(c.Request.Context(), services.CustomTestRequest{
		UserID:       req.UserID,
		Subject:      req.Subject,
		Topic:        req.Topic,
		NumQuestions: req.NumQuestions,
		Duration:     req.Duration,
	})
	if err != nil {
		respondError(c, err, "No questions found for the selected criteria.", "Failed to create the test.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testId": t.ID})
}

// GenerateFullLength 管理员生成 NIMCET 整卷
func (h *MockTestHandler) GenerateFullLength(c *gin.Context) {
	t, err := services.GenerateFullLengthTest(c.Request.Context(), h.fullLength)
	if err != nil {
		respondError(c, err, "", "Failed to generate test.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Test Created Successfully! ID: " + t.ID,
		"testId":    t.ID,
		"structure": t.Sections,
	})
}

// History 全部考试记录
func (h *MockTestHandler) History(c *gin.Context) {
	h.attempts(c, 0)
}

// RecentAttempts 最近 5 次
func (h *MockTestHandler) RecentAttempts(c *gin.Context) {
	h.attempts(c, recentAttemptsLimit)
}

func (h *MockTestHandler) attempts(c *gin.Context, limit int) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	list, err := services.AttemptHistory(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err, "", "Failed to fetch attempts")
		return
	}
	c.JSON(http.StatusOK, list)
}
