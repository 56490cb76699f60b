package handlers

import (
	"errors"
	"mcaverse/internal/middleware"
	"mcaverse/internal/models"
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type reportRequest struct {
	QuestionID     string `json:"questionId" binding:"required"`
	TestID         string `json:"testId" binding:"required"`
	Category       string `json:"category" binding:"required,oneof=wrong_answer wrong_explanation formatting_issue unclear_question duplicate_question other"`
	Description    string `json:"description" binding:"required,min=1,max=1000"`
	QuestionNumber *int   `json:"questionNumber" binding:"omitempty,gt=0"`
}

// Create 题目纠错，reporter 取当前登录用户
func (h *ReportHandler) Create(c *gin.Context) {
	var req reportRequest
	if !bindOrFail(c, &req, "Invalid data.") {
		return
	}

	report := &models.QuestionReport{
		UserID:         middleware.CurrentUID(c),
		QuestionID:     req.QuestionID,
		TestID:         req.TestID,
		Category:       req.Category,
		Description:    req.Description,
		QuestionNumber: req.QuestionNumber,
	}
	err := services.CreateReport(c.Request.Context(), report)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reported this issue for this question."})
		return
	}
	if err != nil {
		respondError(c, err, "", "Server error.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reportId": report.ID})
}
