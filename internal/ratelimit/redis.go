package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter - фиксированное окно на INCR+EXPIRE.
// Пригоден для нескольких инстансов за счет общего хранилища.
type RedisLimiter struct {
	rdb   *redis.Client
	limit int
}

func NewRedisLimiter(rdb *redis.Client, requestsPerWindow int) *RedisLimiter {
	return &RedisLimiter{
		rdb:   rdb,
		limit: requestsPerWindow,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().Unix() / int64(Window.Seconds())
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		// Первый запрос в окне задает срок жизни ключа
		if err := l.rdb.Expire(ctx, redisKey, Window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
