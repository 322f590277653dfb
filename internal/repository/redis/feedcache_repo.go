package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// IndexCacheTTL 首页流整页缓存时长。发帖不主动失效，
	// 最多落后真实数据一个 TTL，这是有意为之的取舍。
	IndexCacheTTL = 20 * time.Second

	IndexKeyPrefix = "feed:index"
)

// FeedCacheRepository 缓存渲染好的首页流响应（含标签变体）
type FeedCacheRepository struct {
	ttl time.Duration
}

func NewFeedCacheRepository() *FeedCacheRepository {
	return &FeedCacheRepository{ttl: IndexCacheTTL}
}

// IndexKey 缓存键：固定前缀 + 标签 + 页码
func IndexKey(tagSlug string, page int) string {
	return fmt.Sprintf("%s:%s:%d", IndexKeyPrefix, tagSlug, page)
}

func (r *FeedCacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *FeedCacheRepository) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.ttl
	}
	return Client.Set(ctx, key, body, ttl).Err()
}

// Clear 运维手动清空：SCAN 前缀逐批删除，返回删掉的键数
func (r *FeedCacheRepository) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	iter := Client.Scan(ctx, 0, IndexKeyPrefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := Client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, iter.Err()
}
