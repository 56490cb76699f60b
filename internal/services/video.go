package services

import (
	"context"
	"mcaverse/internal/db"
	"mcaverse/internal/models"

	"gorm.io/gorm/clause"
)

// SetLectureMark 把讲座加入或移出 completed / revision 集合，重复操作无副作用
func SetLectureMark(ctx context.Context, userID, lectureID, kind string, adding bool) error {
	if kind != models.LectureCompleted && kind != models.LectureRevision {
		return invalid("Invalid progress type")
	}
	conn := db.DB.WithContext(ctx)
	if adding {
		return conn.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.LectureMark{UserID: userID, LectureID: lectureID, Kind: kind}).Error
	}
	return conn.Where("user_id = ? AND lecture_id = ? AND kind = ?", userID, lectureID, kind).
		Delete(&models.LectureMark{}).Error
}

// VideoProgress 返回用户的 completed / revision 两个集合
func VideoProgress(ctx context.Context, userID string) (completed, revision []string, err error) {
	var marks []models.LectureMark
	if err = db.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&marks).Error; err != nil {
		return nil, nil, err
	}
	completed, revision = make([]string, 0), make([]string, 0)
	for _, m := range marks {
		switch m.Kind {
		case models.LectureCompleted:
			completed = append(completed, m.LectureID)
		case models.LectureRevision:
			revision = append(revision, m.LectureID)
		}
	}
	return completed, revision, nil
}
