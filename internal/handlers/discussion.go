package handlers

import (
	"mcaverse/internal/models"
	"mcaverse/internal/services"
	"mcaverse/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DiscussionHandler struct{}

func NewDiscussionHandler() *DiscussionHandler {
	return &DiscussionHandler{}
}

type createDiscussionRequest struct {
	Title      string `json:"title" form:"title" binding:"required,min=5"`
	Content    string `json:"content" form:"content" binding:"required,min=10"`
	AuthorID   string `json:"authorId" form:"authorId" binding:"required"`
	AuthorName string `json:"authorName" form:"authorName" binding:"required"`
}

type voteRequest struct {
	DiscussionID string `json:"discussionId" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
	VoteType     string `json:"voteType" binding:"required"`
}

type deleteDiscussionRequest struct {
	DiscussionID string `json:"discussionId" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
}

type replyRequest struct {
	ReplyContent string `json:"replyContent" binding:"required,min=1"`
	DiscussionID string `json:"discussionId" binding:"required"`
	AuthorID     string `json:"authorId" binding:"required"`
	AuthorName   string `json:"authorName" binding:"required"`
}

type deleteReplyRequest struct {
	DiscussionID string `json:"discussionId" binding:"required"`
	ReplyID      string `json:"replyId" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
}

// List GET /api/discussions?sort=new|top|hot&limit=
func (h *DiscussionHandler) List(c *gin.Context) {
	sortBy := c.DefaultQuery("sort", services.SortNew)
	limit := utils.QueryInt(c.Query("limit"), 50, 100)
	list, err := services.ListDiscussions(c.Request.Context(), sortBy, limit)
	if err != nil {
		respondError(c, err, "", "Failed to fetch discussions.")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Detail 讨论详情 + 回复
func (h *DiscussionHandler) Detail(c *gin.Context) {
	d, replies, err := services.GetDiscussion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Discussion not found.", "Failed to fetch discussion.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"discussion": d, "replies": replies})
}

func (h *DiscussionHandler) Create(c *gin.Context) {
	var req createDiscussionRequest
	if !bindOrFail(c, &req, "Validation failed.") {
		return
	}
	if !requireSelf(c, req.AuthorID) {
		return
	}

	d := &models.Discussion{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
	}
	if err := services.CreateDiscussion(c.Request.Context(), d); err != nil {
		respondError(c, err, "", "Failed to create post. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Your post has been created!", "id": d.ID})
}

// Vote 赞 / 踩，重复同方向为取消
func (h *DiscussionHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	err := services.ToggleVote(c.Request.Context(), req.DiscussionID, req.UserID, services.VoteType(req.VoteType))
	if err != nil {
		respondError(c, err, "Discussion not found.", "Failed to vote.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DiscussionHandler) Delete(c *gin.Context) {
	var req deleteDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	if err := services.DeleteDiscussion(c.Request.Context(), req.DiscussionID, req.UserID); err != nil {
		respondError(c, err, "", "Failed to delete post.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DiscussionHandler) Reply(c *gin.Context) {
	var req replyRequest
	if !bindOrFail(c, &req, "Reply cannot be empty.") {
		return
	}
	if !requireSelf(c, req.AuthorID) {
		return
	}

	reply := &models.Reply{
		DiscussionID: req.DiscussionID,
		Content:      req.ReplyContent,
		AuthorID:     req.AuthorID,
		AuthorName:   req.AuthorName,
	}
	if err := services.AddReply(c.Request.Context(), reply); err != nil {
		respondError(c, err, "Discussion not found.", "Failed to add reply.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": reply.ID})
}

func (h *DiscussionHandler) DeleteReply(c *gin.Context) {
	var req deleteReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if !requireSelf(c, req.UserID) {
		return
	}

	if err := services.DeleteReply(c.Request.Context(), req.DiscussionID, req.ReplyID, req.UserID); err != nil {
		respondError(c, err, "", "Failed to delete reply.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
