package services

import (
	"context"
	"errors"
	"mcaverse/internal/models"

	"gorm.io/gorm"
)

type VoteType string

const (
	VoteTypeUp   VoteType = "up"
	VoteTypeDown VoteType = "down"
)

// VoteState 用户对某个讨论的投票状态，取值与 DiscussionVote.Value 一致
type VoteState int

const (
	NotVoted  VoteState = 0
	Upvoted   VoteState = models.VoteUp
	Downvoted VoteState = models.VoteDown
)

// NextVoteState 投票状态机：返回新状态和 voteCount 的变化量
//
//	none  + up   -> up    +1
//	up    + up   -> none  -1
//	down  + up   -> up    +2
//	none  + down -> down  -1
//	down  + down -> none  +1
//	up    + down -> down  -2
func NextVoteState(current VoteState, action VoteType) (VoteState, int) {
	switch action {
	case VoteTypeUp:
		switch current {
		case Upvoted:
			return NotVoted, -1
		case Downvoted:
			return Upvoted, 2
		default:
			return Upvoted, 1
		}
	case VoteTypeDown:
		switch current {
		case Downvoted:
			return NotVoted, 1
		case Upvoted:
			return Downvoted, -2
		default:
			return Downvoted, -1
		}
	}
	return current, 0
}

// NextLikeState 点赞开关：返回是否点赞和 likeCount 的变化量
func NextLikeState(liked bool) (bool, int) {
	if liked {
		return false, -1
	}
	return true, 1
}

// ToggleVote 在一个事务里读取当前投票、计算新状态、写回集合和计数
func ToggleVote(ctx context.Context, discussionID, userID string, action VoteType) error {
	if action != VoteTypeUp && action != VoteTypeDown {
		return invalid("Invalid vote type")
	}

	return runTx(ctx, func(tx *gorm.DB) error {
		var d models.Discussion
		if err := forUpdate(tx).Select("id").Where("id = ?", discussionID).Take(&d).Error; err != nil {
			return notFound(err, "discussion")
		}

		current := NotVoted
		var existing models.DiscussionVote
		err := tx.Where("discussion_id = ? AND user_id = ?", discussionID, userID).Take(&existing).Error
		switch {
		case err == nil:
			current = VoteState(existing.Value)
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		next, delta := NextVoteState(current, action)

		switch {
		case next == NotVoted:
			err = tx.Where("discussion_id = ? AND user_id = ?", discussionID, userID).
				Delete(&models.DiscussionVote{}).Error
		case current == NotVoted:
			err = tx.Create(&models.DiscussionVote{
				DiscussionID: discussionID,
				UserID:       userID,
				Value:        int(next),
			}).Error
		default:
			err = tx.Model(&models.DiscussionVote{}).
				Where("discussion_id = ? AND user_id = ?", discussionID, userID).
				Update("value", int(next)).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&models.Discussion{}).
			Where("id = ?", discussionID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + ?", delta)).Error
	})
}

// ToggleLike 点赞/取消点赞一个故事
func ToggleLike(ctx context.Context, storyID, userID string) error {
	return runTx(ctx, func(tx *gorm.DB) error {
		var s models.SuccessStory
		if err := forUpdate(tx).Select("id").Where("id = ?", storyID).Take(&s).Error; err != nil {
			return notFound(err, "story")
		}

		var count int64
		if err := tx.Model(&models.StoryLike{}).
			Where("story_id = ? AND user_id = ?", storyID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		liked, delta := NextLikeState(count > 0)
		var err error
		if liked {
			err = tx.Create(&models.StoryLike{StoryID: storyID, UserID: userID}).Error
		} else {
			err = tx.Where("story_id = ? AND user_id = ?", storyID, userID).Delete(&models.StoryLike{}).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&models.SuccessStory{}).
			Where("id = ?", storyID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
	})
}
