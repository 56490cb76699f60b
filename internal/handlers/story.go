package handlers

import (
	"mcaverse/internal/models"
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct{}

func NewStoryHandler() *StoryHandler {
	return &StoryHandler{}
}

type submitStoryRequest struct {
	Name         string `json:"name" form:"name" binding:"required,min=2"`
	Batch        string `json:"batch" form:"batch" binding:"required,min=4"`
	Company      string `json:"company" form:"company" binding:"required,min=2"`
	StoryTitle   string `json:"storyTitle" form:"storyTitle" binding:"required,min=10"`
	StoryContent string `json:"storyContent" form:"storyContent" binding:"required,min=50"`
	ImageURL     string `json:"imageUrl" form:"imageUrl" binding:"omitempty,url"`
}

type likeRequest struct {
	StoryID string `json:"storyId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

// List 公开接口只返回已审核的故事
func (h *StoryHandler) List(c *gin.Context) {
	stories, err := services.ListStories(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "", "Failed to fetch stories.")
		return
	}
	c.JSON(http.StatusOK, stories)
}

// ListAll 管理员审核用，包含未审核的故事
func (h *StoryHandler) ListAll(c *gin.Context) {
	stories, err := services.ListStories(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "", "Failed to fetch stories.")
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) Submit(c *gin.Context) {
	var req submitStoryRequest
	if !bindOrFail(c, &req, "Validation failed.") {
		return
	}

	story := &models.SuccessStory{
		Name:    req.Name,
		Batch:   req.Batch,
		Company: req.Company,
		Title:   req.StoryTitle,
		Content: req.StoryContent,
	}
	if req.ImageURL != "" {
		story.ImageURL = &req.ImageURL
	}
	if err := services.SubmitStory(c.Request.Context(), story); err != nil {
		respondError(c, err, "", "Failed to submit story. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you! Your story has been submitted for review."})
}

// Approve 管理员审核通过
func (h *StoryHandler) Approve(c *gin.Context) {
	if err := services.ApproveStory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Story not found.", "Failed to approve")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *StoryHandler) Delete(c *gin.Context) {
	if err := services.DeleteStory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Story not found.", "Failed to delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Like 点赞 / 取消点赞
func (h *StoryHandler) Like(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	if err := services.ToggleLike(c.Request.Context(), req.StoryID, req.UserID); err != nil {
		respondError(c, err, "Story not found.", "Failed to update like status.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
