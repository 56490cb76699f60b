package services

import (
	"context"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
)

// CreateGuestApplication 保存播客嘉宾申请
func CreateGuestApplication(ctx context.Context, g *models.GuestApplication) error {
	return db.DB.WithContext(ctx).Create(g).Error
}
