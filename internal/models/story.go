package models

import (
	"time"

	"gorm.io/gorm"
)

// SuccessStory 学员上岸故事，提交后需要管理员审核
type SuccessStory struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Batch       string    `gorm:"size:20" json:"batch"`
	Company     string    `gorm:"size:100" json:"company"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ImageURL    *string   `json:"imageUrl"`
	Approved    bool      `gorm:"default:false;index" json:"approved"`
	LikeCount   int       `gorm:"not null;default:0" json:"likeCount"`
	SubmittedAt time.Time `gorm:"index" json:"submittedAt"`

	LikeRows []StoryLike `gorm:"foreignKey:StoryID" json:"-"`
	Likes    []string    `gorm:"-" json:"likes"`
}

func (s *SuccessStory) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now()
	}
	return nil
}

func (s *SuccessStory) FillLikes() {
	s.Likes = make([]string, 0, len(s.LikeRows))
	for _, l := range s.LikeRows {
		s.Likes = append(s.Likes, l.UserID)
	}
}

// StoryLike likes 集合的成员关系
type StoryLike struct {
	StoryID   string    `gorm:"primaryKey;size:36" json:"storyId"`
	UserID    string    `gorm:"primaryKey;size:128" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
