package services

import (
	"context"
	"mcaverse/internal/models"

	"gorm.io/gorm"
)

// CreateReport 同一用户对同一题同一类别只能有一个未处理的报告
func CreateReport(ctx context.Context, r *models.QuestionReport) error {
	r.Status = models.ReportStatusOpen
	return runTx(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.QuestionReport{}).
			Where("user_id = ? AND question_id = ? AND category = ? AND status = ?",
				r.UserID, r.QuestionID, r.Category, models.ReportStatusOpen).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Create(r).Error
	})
}
