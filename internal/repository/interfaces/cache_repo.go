package interfaces

import (
	"context"
	"time"
)

// FeedCache 首页流的整页响应缓存。
// 写入只靠 TTL 过期，发帖不主动失效；Clear 给运维手动清空用。
type FeedCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	Clear(ctx context.Context) (int64, error)
}

// SessionStore 登录态 token 存储
type SessionStore interface {
	AddUserToken(userID uint64, token string) error
	GetUserToken(userID uint64) (string, error)
	DeleteUserToken(userID uint64) error
}
