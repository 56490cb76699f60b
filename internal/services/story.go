package services

import (
	"context"
	"mcaverse/internal/db"
	"mcaverse/internal/models"

	"gorm.io/gorm"
)

// SubmitStory 新提交的故事默认未审核
func SubmitStory(ctx context.Context, s *models.SuccessStory) error {
	s.Approved = false
	s.LikeCount = 0
	if err := db.DB.WithContext(ctx).Omit("LikeRows").Create(s).Error; err != nil {
		return err
	}
	s.FillLikes()
	return nil
}

// ListStories 已审核的故事；includePending 给管理员看全部
func ListStories(ctx context.Context, includePending bool) ([]models.SuccessStory, error) {
	query := db.DB.WithContext(ctx).Preload("LikeRows").Order("submitted_at DESC")
	if !includePending {
		query = query.Where("approved = ?", true)
	}
	var stories []models.SuccessStory
	if err := query.Find(&stories).Error; err != nil {
		return nil, err
	}
	for i := range stories {
		stories[i].FillLikes()
	}
	return stories, nil
}

func ApproveStory(ctx context.Context, id string) error {
	res := db.DB.WithContext(ctx).Model(&models.SuccessStory{}).Where("id = ?", id).Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteStory(ctx context.Context, id string) error {
	return runTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", id).Delete(&models.StoryLike{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.SuccessStory{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
