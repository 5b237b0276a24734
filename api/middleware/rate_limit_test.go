/*
 * @module api/middleware/rate_limit_test
 * @description 限流中间件单元测试，覆盖未配置限流器时的直通行为
 * @architecture 测试层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 构造请求 -> 中间件处理 -> 响应断言
 * @rules 限流器未配置时请求直通，不加限流响应头
 * @dependencies testing, net/http/httptest, stretchr/testify
 */

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitNilLimiterPassThrough(t *testing.T) {
	called := false
	handler := RateLimit(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/diabetes/predict", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/diabetes/predict", nil)
	req.RemoteAddr = "10.1.2.3:51234"
	assert.Equal(t, "10.1.2.3", clientID(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", clientID(req))
}
