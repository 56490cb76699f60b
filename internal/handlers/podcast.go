package handlers

import (
	"mcaverse/internal/models"
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PodcastHandler struct {
	youtube    *services.YouTubeClient
	playlistID string
}

func NewPodcastHandler(youtube *services.YouTubeClient, playlistID string) *PodcastHandler {
	return &PodcastHandler{youtube: youtube, playlistID: playlistID}
}

type guestApplicationRequest struct {
	Name   string `json:"name" binding:"required,min=2"`
	Email  string `json:"email" binding:"required,email"`
	Social string `json:"social" binding:"required,url"`
	Topic  string `json:"topic" binding:"required,min=10"`
}

// Episodes 最近的播客，拉取失败时为空列表
func (h *PodcastHandler) Episodes(c *gin.Context) {
	c.JSON(http.StatusOK, h.youtube.RecentEpisodes(c.Request.Context(), h.playlistID))
}

// Apply 嘉宾申请，只入库不发邮件
func (h *PodcastHandler) Apply(c *gin.Context) {
	var req guestApplicationRequest
	if !bindOrFail(c, &req, "Validation failed. Check your inputs.") {
		return
	}

	app := &models.GuestApplication{
		Name:   req.Name,
		Email:  req.Email,
		Social: req.Social,
		Topic:  req.Topic,
	}
	if err := services.CreateGuestApplication(c.Request.Context(), app); err != nil {
		respondError(c, err, "", "Failed to submit application.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application submitted successfully!"})
}
