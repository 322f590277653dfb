package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Vega_Blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

// Follow 关注（幂等）。去重交给 (user_id, author_id) 唯一索引 + DoNothing，
// 并发双写也只会落一行；RowsAffected 告诉我们这次是不是新关注。
func (r *FollowRepository) Follow(ctx context.Context, userID, authorID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel := model.Follow{UserID: userID, AuthorID: authorID}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
			DoNothing: true,
		}).Create(&rel)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 已关注，幂等命中
			return nil
		}
		changed = true
		return insertOutbox(tx, "follow", userID, authorID)
	})
	return changed, err
}

// Unfollow 取消关注，不存在时为空操作
func (r *FollowRepository) Unfollow(ctx context.Context, userID, authorID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND author_id = ?", userID, authorID).
			Delete(&model.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "unfollow", userID, authorID)
	})
	return changed, err
}

// IsFollowing 写后立即可见，不走任何缓存
func (r *FollowRepository) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// insertOutbox 社交事件和状态变化同事务落表，投递器异步搬走
func insertOutbox(tx *gorm.DB, event string, actorID, targetID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"target":     targetID,
	})
	ob := &model.SocialOutbox{
		EventType: event,
		ActorID:   actorID,
		TargetID:  targetID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}
