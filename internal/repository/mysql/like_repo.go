package mysql

import (
	"context"

	"Vega_Blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	DB *gorm.DB
}

// Like 点赞（幂等），(user_id, post_id) 唯一索引兜底
func (r *LikeRepository) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := model.Like{UserID: userID, PostID: postID}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).Create(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "like", userID, postID)
	})
	return changed, err
}

// Unlike 取消点赞，没赞过就是空操作
func (r *LikeRepository) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "unlike", userID, postID)
	})
	return changed, err
}

func (r *LikeRepository) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *LikeRepository) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
