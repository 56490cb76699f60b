package services

import (
	"context"
	"errors"
	"mcaverse/internal/db"
	"mcaverse/internal/models"

	"gorm.io/gorm"
)

// ProfileUpdate 可选字段为 nil 时保持原值
type ProfileUpdate struct {
	Name     string
	College  *string
	Course   *string
	Location *string
	Bio      *string
	LinkedIn *string
	GitHub   *string
	ImageURL string
}

// GetProfile 用户不存在时返回 nil
func GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := db.DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile 合并写入用户资料，不存在则创建
func UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) error {
	return runTx(ctx, func(tx *gorm.DB) error {
		if _, err := ensureUser(tx, userID); err != nil {
			return err
		}

		updates := map[string]interface{}{"name": p.Name}
		if p.ImageURL != "" {
			updates["photo_url"] = p.ImageURL
		}
		optional := map[string]*string{
			"college":  p.College,
			"course":   p.Course,
			"location": p.Location,
			"bio":      p.Bio,
			"linkedin": p.LinkedIn,
			"github":   p.GitHub,
		}
		for col, v := range optional {
			if v != nil {
				updates[col] = *v
			}
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
	})
}
