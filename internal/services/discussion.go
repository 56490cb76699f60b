package services

import (
	"context"
	"errors"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"mcaverse/internal/utils"
	"sort"
	"time"

	"gorm.io/gorm"
)

const (
	SortNew = "new"
	SortTop = "top"
	SortHot = "hot"
)

func CreateDiscussion(ctx context.Context, d *models.Discussion) error {
	d.VoteCount = 0
	d.ReplyCount = 0
	if err := db.DB.WithContext(ctx).Omit("Votes").Create(d).Error; err != nil {
		return err
	}
	d.FillVoteSets()
	return nil
}

// 热度只在最近的帖子里算
const (
	hotWindow         = 30 * 24 * time.Hour
	hotCandidateLimit = 200
)

// ListDiscussions 按 new / top / hot 排序的讨论列表
func ListDiscussions(ctx context.Context, sortBy string, limit int) ([]models.Discussion, error) {
	if sortBy == SortHot {
		return listHot(ctx, limit)
	}

	query := db.DB.WithContext(ctx).Preload("Votes")
	if sortBy == SortTop {
		query = query.Order("vote_count DESC")
	}
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var list []models.Discussion
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		list[i].FillVoteSets()
	}
	return list, nil
}

// listHot 最近 hotWindow 内的帖子按热度排序，不够 limit 时用更早的帖子按时间补齐
func listHot(ctx context.Context, limit int) ([]models.Discussion, error) {
	conn := db.DB.WithContext(ctx)
	cutoff := utils.Now().Add(-hotWindow)

	var list []models.Discussion
	if err := conn.Preload("Votes").
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Limit(hotCandidateLimit).
		Find(&list).Error; err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(list))
	for i := range list {
		list[i].FillVoteSets()
		d := list[i]
		scores[d.ID] = utils.HotScore(d.CreatedAt, len(d.Upvotes), len(d.Downvotes), d.ReplyCount)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return scores[list[i].ID] > scores[list[j].ID]
	})

	if limit <= 0 {
		return list, nil
	}
	if len(list) >= limit {
		return list[:limit], nil
	}

	var older []models.Discussion
	if err := conn.Preload("Votes").
		Where("created_at < ?", cutoff).
		Order("created_at DESC").
		Limit(limit - len(list)).
		Find(&older).Error; err != nil {
		return nil, err
	}
	for i := range older {
		older[i].FillVoteSets()
	}
	return append(list, older...), nil
}

// GetDiscussion 讨论详情（含渲染后的正文）及全部回复
func GetDiscussion(ctx context.Context, id string) (*models.Discussion, []models.Reply, error) {
	conn := db.DB.WithContext(ctx)
	var d models.Discussion
	if err := conn.Preload("Votes").Where("id = ?", id).Take(&d).Error; err != nil {
		return nil, nil, notFound(err, "discussion")
	}
	d.FillVoteSets()
	d.ContentHTML = utils.RenderMarkdown(d.Content)

	replies := make([]models.Reply, 0)
	if err := conn.Where("discussion_id = ?", id).Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, nil, err
	}
	return &d, replies, nil
}

// DeleteDiscussion 只有作者可以删除；讨论不存在同样返回 ErrForbidden
func DeleteDiscussion(ctx context.Context, id, userID string) error {
	return runTx(ctx, func(tx *gorm.DB) error {
		var d models.Discussion
		err := forUpdate(tx).Select("id", "author_id").Where("id = ?", id).Take(&d).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrForbidden
			}
			return err
		}
		if d.AuthorID != userID {
			return ErrForbidden
		}
		if err := tx.Where("discussion_id = ?", id).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("discussion_id = ?", id).Delete(&models.DiscussionVote{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Discussion{}).Error
	})
}

// AddReply 新增回复并把 replyCount +1
func AddReply(ctx context.Context, r *models.Reply) error {
	return runTx(ctx, func(tx *gorm.DB) error {
		var d models.Discussion
		if err := forUpdate(tx).Select("id").Where("id = ?", r.DiscussionID).Take(&d).Error; err != nil {
			return notFound(err, "discussion")
		}
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		return tx.Model(&models.Discussion{}).
			Where("id = ?", r.DiscussionID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).Error
	})
}

// DeleteReply 只有回复作者可以删除
func DeleteReply(ctx context.Context, discussionID, replyID, userID string) error {
	return runTx(ctx, func(tx *gorm.DB) error {
		var r models.Reply
		err := tx.Where("id = ? AND discussion_id = ?", replyID, discussionID).Take(&r).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrForbidden
			}
			return err
		}
		if r.AuthorID != userID {
			return ErrForbidden
		}
		if err := tx.Where("id = ?", replyID).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Discussion{}).
			Where("id = ? AND reply_count > 0", discussionID).
			UpdateColumn("reply_count", gorm.Expr("reply_count - ?", 1)).Error
	})
}
