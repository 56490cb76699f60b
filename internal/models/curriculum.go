package models

// CurriculumTopic 课程大纲中的一个专题，PlaylistID 为空时该专题暂无视频
type CurriculumTopic struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	Subject      string `gorm:"size:100;not null;uniqueIndex:idx_subject_topic" json:"subject"`
	SubjectOrder int    `gorm:"not null;default:0" json:"-"`
	Name         string `gorm:"size:100;not null;uniqueIndex:idx_subject_topic" json:"name"`
	Position     int    `gorm:"not null;default:0" json:"-"`
	PlaylistID   string `gorm:"size:64" json:"playlistId,omitempty"`
}
