package mysql

import (
	"context"

	"Vega_Blog/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.SocialOutbox, error) {
	var list []model.SocialOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.SocialOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

// MarkFailed 投递失败：置 failed 并累加重试计数
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.SocialOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}
