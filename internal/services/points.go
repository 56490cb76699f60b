package services

import (
	"mcaverse/internal/models"

	"gorm.io/gorm"
)

// 积分动作
const (
	ActionDailyCorrect = "Daily practice solved"
)

// 积分值
const (
	PointsDailyCorrect = 10
)

// AddPoints 在调用方的事务内记录积分明细并更新用户总积分
func AddPoints(tx *gorm.DB, userID string, amount int, action string) error {
	entry := models.PointLog{
		UserID: userID,
		Amount: amount,
		Action: action,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", amount)).
		Error
}
