package service

import (
	"context"
	"encoding/json"
	"time"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/interfaces"

	"go.uber.org/zap"
)

type Sender func(ctx context.Context, ob *model.SocialOutbox) error

// OutboxRelayer 社交事件投递器：定时把 pending 的 outbox 行搬给 Kafka
type OutboxRelayer struct {
	repo      interfaces.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(repo interfaces.OutboxRepository, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		pkg.Logger.Error("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 按 actor 分区投递，同一个用户的事件保序
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.SocialOutbox) error {
		value, err := json.Marshal(map[string]any{
			"event_type": ob.EventType,
			"actor":      ob.ActorID,
			"target":     ob.TargetID,
			"payload":    json.RawMessage(ob.Payload),
		})
		if err != nil {
			return err
		}
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.ActorID), value)
	}
}

// LogSender 没配 Kafka 时的降级投递：只打日志
func LogSender(ctx context.Context, ob *model.SocialOutbox) error {
	pkg.Logger.Info("outbox send",
		zap.String("type", ob.EventType),
		zap.Uint64("actor", ob.ActorID),
		zap.Uint64("target", ob.TargetID))
	return nil
}
