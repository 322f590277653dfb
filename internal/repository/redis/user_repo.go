package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	UserTokenPrefix = "login:user:token"
	// 和 pkg.SessionTTL 对齐，cookie 里的 JWT 过期时这里也该过期了
	UserTokenExpire = 24 * time.Hour
)

// UserRepository 登录态 token 存储，登出即删键
type UserRepository struct{}

func (r *UserRepository) AddUserToken(userID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	if err := Client.Set(context.Background(), key, token, UserTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *UserRepository) GetUserToken(userID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *UserRepository) DeleteUserToken(userID uint64) error {
	key := fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
