package login

import (
	"context"
	"time"

	"terminal-terrace/tutoring-service/internal/database"
)

const (
	// 登录失败计数 Redis key 前缀
	loginAttemptsPrefix = "login_attempts:"
)

// AttemptRepository 登录失败计数器
// Redis 不可用时放行，限流是保护措施而不是正确性前提
type AttemptRepository struct {
	redis *database.RedisClient
}

func NewAttemptRepository(redisClient *database.RedisClient) *AttemptRepository {
	return &AttemptRepository{redis: redisClient}
}

// Count 返回当前窗口内的失败次数
func (r *AttemptRepository) Count(username string) int64 {
	if r.redis == nil {
		return 0
	}

	ctx := context.Background()
	count, err := r.redis.Get(ctx, loginAttemptsPrefix+username).Int64()
	if err != nil {
		return 0
	}
	return count
}

// Fail 记录一次失败，首次失败时设置窗口过期
func (r *AttemptRepository) Fail(username string, window time.Duration) {
	if r.redis == nil {
		return
	}

	ctx := context.Background()
	key := loginAttemptsPrefix + username

	count, err := r.redis.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		r.redis.Expire(ctx, key, window)
	}
}

// Reset 登录成功后清空计数
func (r *AttemptRepository) Reset(username string) {
	if r.redis == nil {
		return
	}

	ctx := context.Background()
	r.redis.Del(ctx, loginAttemptsPrefix+username)
}
