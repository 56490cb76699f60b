package models

import (
	"time"
)

const (
	LectureCompleted = "completed"
	LectureRevision  = "revision"
)

// LectureMark 视频学习进度：completed / revision 两个集合
type LectureMark struct {
	UserID    string    `gorm:"primaryKey;size:128" json:"userId"`
	LectureID string    `gorm:"primaryKey;size:64" json:"lectureId"`
	Kind      string    `gorm:"primaryKey;size:20" json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}
