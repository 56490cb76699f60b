package models

import (
	"time"

	"gorm.io/gorm"
)

type Discussion struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorID   string    `gorm:"size:128;not null;index" json:"authorId"`
	AuthorName string    `gorm:"size:100" json:"authorName"`
	VoteCount  int       `gorm:"not null;default:0" json:"voteCount"`
	ReplyCount int       `gorm:"not null;default:0" json:"replyCount"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`

	Votes []DiscussionVote `gorm:"foreignKey:DiscussionID" json:"-"`

	// 非数据库字段，由 Votes 展开
	Upvotes     []string `gorm:"-" json:"upvotes"`
	Downvotes   []string `gorm:"-" json:"downvotes"`
	ContentHTML string   `gorm:"-" json:"contentHtml,omitempty"`
}

func (d *Discussion) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

// FillVoteSets 把投票行展开为 upvotes/downvotes 两个集合
func (d *Discussion) FillVoteSets() {
	d.Upvotes = make([]string, 0)
	d.Downvotes = make([]string, 0)
	for _, v := range d.Votes {
		switch v.Value {
		case VoteUp:
			d.Upvotes = append(d.Upvotes, v.UserID)
		case VoteDown:
			d.Downvotes = append(d.Downvotes, v.UserID)
		}
	}
}

type Reply struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	DiscussionID string    `gorm:"size:36;not null;index" json:"discussionId"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	AuthorID     string    `gorm:"size:128;not null;index" json:"authorId"`
	AuthorName   string    `gorm:"size:100" json:"authorName"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
