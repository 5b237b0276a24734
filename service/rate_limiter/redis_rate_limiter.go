/*
 * @module service/rate_limiter/redis_rate_limiter
 * @description 基于Redis的预测接口限流服务，按调用方标识做固定窗口计数限流
 * @architecture 工具层 - 提供分布式限流能力
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 检查限流规则 -> Redis计数 -> 判断是否超限
 * @rules 使用Redis INCR和EXPIRE实现固定窗口限流，Lua脚本保证原子性
 * @dependencies github.com/go-redis/redis/v8, github.com/spf13/cast
 * @refs api/middleware/rate_limit.go, service/init.go
 */

package rate_limiter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cast"
)

// RateLimitResult 限流检查结果
type RateLimitResult struct {
	Allowed   bool  `json:"allowed"`   // 是否允许请求
	Limit     int   `json:"limit"`     // 窗口内最大请求数
	Remaining int   `json:"remaining"` // 剩余可用请求数
	ResetAt   int64 `json:"reset_at"`  // 窗口重置时间（Unix时间戳）
}

// RedisRateLimiter Redis限流器
type RedisRateLimiter struct {
	client      *redis.Client
	window      int // 时间窗口（秒）
	maxRequests int // 窗口内最大请求数
}

// NewRedisRateLimiter 创建Redis限流器，连接参数与限流参数均来自环境变量
func NewRedisRateLimiter() (*RedisRateLimiter, error) {
	host := getEnvWithDefault("REDIS_HOST", "localhost")
	port := getEnvWithDefault("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")
	db := cast.ToInt(os.Getenv("REDIS_DB"))

	window := cast.ToInt(getEnvWithDefault("PREDICT_RATE_WINDOW", "60"))
	maxRequests := cast.ToInt(getEnvWithDefault("PREDICT_RATE_LIMIT", "60"))
	if window <= 0 || maxRequests <= 0 {
		return nil, fmt.Errorf("限流参数无效: window=%d, max_requests=%d", window, maxRequests)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis连接失败: %w", err)
	}

	slog.Info("Redis限流器初始化成功",
		"redis_host", host,
		"redis_port", port,
		"window_seconds", window,
		"max_requests", maxRequests)

	return &RedisRateLimiter{
		client:      client,
		window:      window,
		maxRequests: maxRequests,
	}, nil
}

// rateLimitScript 原子性的计数与超限判断
const rateLimitScript = `
	local key = KEYS[1]
	local max_requests = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])

	local current = redis.call('GET', key)
	if current == false then
		current = 0
	else
		current = tonumber(current)
	end

	if current >= max_requests then
		local ttl = redis.call('TTL', key)
		if ttl == -1 then
			ttl = window
		end
		return {0, current, ttl}
	end

	local new_count = redis.call('INCR', key)
	if new_count == 1 then
		redis.call('EXPIRE', key, window)
	end

	local ttl = redis.call('TTL', key)
	if ttl == -1 then
		ttl = window
	end

	return {1, new_count, ttl}
`

// Allow 检查调用方是否允许继续请求
func (r *RedisRateLimiter) Allow(ctx context.Context, clientID string) (*RateLimitResult, error) {
	key := r.buildKey(clientID)

	result, err := r.client.Eval(ctx, rateLimitScript, []string{key}, r.maxRequests, r.window).Result()
	if err != nil {
		return nil, fmt.Errorf("限流检查失败: %w", err)
	}

	values := result.([]interface{})
	allowed := values[0].(int64) == 1
	current := int(values[1].(int64))
	ttl := int(values[2].(int64))

	remaining := r.maxRequests - current
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitResult{
		Allowed:   allowed,
		Limit:     r.maxRequests,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Second).Unix(),
	}, nil
}

// buildKey 构造当前窗口的限流Key
func (r *RedisRateLimiter) buildKey(clientID string) string {
	currentWindow := time.Now().Unix() / int64(r.window)
	return fmt.Sprintf("rate_limit:predict:%s:%d", clientID, currentWindow)
}

// Reset 重置指定调用方的限流计数（仅用于测试或管理）
func (r *RedisRateLimiter) Reset(ctx context.Context, clientID string) error {
	return r.client.Del(ctx, r.buildKey(clientID)).Err()
}

// Close 关闭Redis客户端
func (r *RedisRateLimiter) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
