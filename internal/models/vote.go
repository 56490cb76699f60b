package models

import (
	"time"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

// DiscussionVote 是 upvotes/downvotes 集合的成员关系，一个用户对一个讨论最多一行
type DiscussionVote struct {
	DiscussionID string    `gorm:"primaryKey;size:36" json:"discussionId"`
	UserID       string    `gorm:"primaryKey;size:128" json:"userId"`
	Value        int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt    time.Time `json:"createdAt"`
}
