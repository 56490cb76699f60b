package handlers

import (
	"mcaverse/internal/middleware"
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PracticeHandler struct{}

func NewPracticeHandler() *PracticeHandler {
	return &PracticeHandler{}
}

type submitDailyRequest struct {
	UserID              string `json:"userId" binding:"required"`
	QuestionID          string `json:"questionId" binding:"required"`
	SelectedOptionIndex *int   `json:"selectedOptionIndex" binding:"required"`
}

// DailyQuestion GET /api/dpp/daily-question?userId=
// 带 userId 时必须是本人，否则只返回题目
func (h *PracticeHandler) DailyQuestion(c *gin.Context) {
	userID := c.Query("userId")
	if userID != "" && userID != middleware.CurrentUID(c) {
		userID = ""
	}

	result, err := services.GetDailyQuestion(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "No questions available.", "Failed to fetch daily question.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PracticeHandler) Submit(c *gin.Context) {
	var req submitDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	result, err := services.SubmitDailyAnswer(c.Request.Context(), req.UserID, req.QuestionID, *req.SelectedOptionIndex)
	if err != nil {
		respondError(c, err, "Question not found", "Failed to submit answer.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Streak GET /api/user/streak?userId=
func (h *PracticeHandler) Streak(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	streak, err := services.GetCurrentStreak(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "", "Failed to fetch streak.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentStreak": streak})
}

// History 贡献日历
func (h *PracticeHandler) History(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	history, err := services.PracticeHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "", "Failed to fetch history.")
		return
	}
	c.JSON(http.StatusOK, history)
}
