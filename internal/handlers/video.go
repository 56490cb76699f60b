package handlers

import (
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	youtube *services.YouTubeClient
}

func NewVideoHandler(youtube *services.YouTubeClient) *VideoHandler {
	return &VideoHandler{youtube: youtube}
}

type progressRequest struct {
	UserID    string `json:"userId" binding:"required"`
	LectureID string `json:"lectureId" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=completed revision"`
	IsAdding  *bool  `json:"isAdding" binding:"required"`
}

// CourseData 课程大纲和视频列表
func (h *VideoHandler) CourseData(c *gin.Context) {
	data, err := h.youtube.CourseData(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *VideoHandler) Progress(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	completed, revision, err := services.VideoProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "", "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed, "revision": revision})
}

// UpdateProgress 标记 / 取消标记讲座
func (h *VideoHandler) UpdateProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	if err := services.SetLectureMark(c.Request.Context(), req.UserID, req.LectureID, req.Type, *req.IsAdding); err != nil {
		respondError(c, err, "", "Failed to update progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
