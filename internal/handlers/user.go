package handlers

import (
	"mcaverse/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type profileRequest struct {
	UserID   string  `json:"userId" form:"userId" binding:"required"`
	Name     string  `json:"name" form:"name" binding:"required,min=2"`
	College  *string `json:"college" form:"college"`
	Course   *string `json:"course" form:"course"`
	Location *string `json:"location" form:"location"`
	Bio      *string `json:"bio" form:"bio"`
	LinkedIn *string `json:"linkedin" form:"linkedin" binding:"omitempty,url|len=0"`
	GitHub   *string `json:"github" form:"github" binding:"omitempty,url|len=0"`
	ImageURL string  `json:"imageUrl" form:"imageUrl" binding:"omitempty,url"`
}

// Leaderboard 积分前十
func (h *UserHandler) Leaderboard(c *gin.Context) {
	entries, err := services.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch leaderboard")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// SubjectPerformance 各科正确率
func (h *UserHandler) SubjectPerformance(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	if !requireSelf(c, userID) {
		return
	}

	scores, err := services.SubjectPerformance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "", "Failed to fetch subject performance")
		return
	}
	c.JSON(http.StatusOK, scores)
}

// Profile 用户资料，不存在时返回空对象
func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	user, err := services.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "", "Failed to fetch profile")
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !bindOrFail(c, &req, "Validation failed.") {
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	err := services.UpdateProfile(c.Request.Context(), req.UserID, services.ProfileUpdate{
		Name:     req.Name,
		College:  req.College,
		Course:   req.Course,
		Location: req.Location,
		Bio:      req.Bio,
		LinkedIn: req.LinkedIn,
		GitHub:   req.GitHub,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err, "", "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully!"})
}
