/*
 * @module api/middleware/rate_limit
 * @description 预测接口限流中间件，按调用方IP做固定窗口限流并返回标准限流响应头
 * @architecture 中间件模式 - HTTP请求拦截
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 提取调用方标识 -> 限流检查 -> 透传或429
 * @rules 限流器未配置时直接放行；限流检查自身失败时放行并告警，不因限流故障拒绝预测
 * @dependencies riskscreen-service/service/rate_limiter, github.com/go-chi/render
 * @refs api/routes.go, service/rate_limiter/redis_rate_limiter.go
 */

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"riskscreen-service/service/rate_limiter"
)

// RateLimitResponse 限流超限响应结构
type RateLimitResponse struct {
	Status int    `json:"status" example:"429"`
	Msg    string `json:"msg" example:"请求过于频繁, 请稍后重试"`
}

// RateLimit 创建限流中间件，limiter 为 nil 时直接放行
func RateLimit(limiter *rate_limiter.RedisRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), clientID(r))
			if err != nil {
				slog.Warn("限流检查失败, 请求放行", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

			if !result.Allowed {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, RateLimitResponse{
					Status: http.StatusTooManyRequests,
					Msg:    "请求过于频繁, 请稍后重试",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientID 提取调用方标识，优先使用反向代理透传的原始IP
func clientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
