package interfaces

import (
	"context"

	"Vega_Blog/internal/model"
)

// OutboxRepository 社交事件表的投递侧操作
type OutboxRepository interface {
	ListPending(ctx context.Context, batchSize int) ([]model.SocialOutbox, error)
	MarkSent(ctx context.Context, id uint64) error
	MarkFailed(ctx context.Context, id uint64) error
}
