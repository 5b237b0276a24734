/*
 * @module service/init
 * @description 服务初始化模块，负责模型包加载器构造、启动预加载、指标收集和限流器等初始化工作
 * @architecture 分层架构 - 服务层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 模型包预加载失败只告警不中止进程，制品缺失按请求以服务不可用上报；
 *        加载器作为显式句柄在此构造一次并注入流水线
 * @dependencies riskscreen-service/service/bundle, riskscreen-service/service/monitoring,
 *               riskscreen-service/service/prediction, riskscreen-service/service/rate_limiter
 * @refs api/routes.go, main.go
 */

package service

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"riskscreen-service/service/bundle"
	"riskscreen-service/service/monitoring"
	"riskscreen-service/service/prediction"
	"riskscreen-service/service/rate_limiter"
)

// DefaultBundlePath 模型包制品的默认路径，由离线训练流程产出
const DefaultBundlePath = "saved_models/diabetes_bundle_v6.json"

var (
	// InstanceID 进程实例标识，用于健康上报
	InstanceID string

	GlobalBundleLoader      *bundle.Loader
	GlobalMetricsCollector  *monitoring.MetricsCollector
	GlobalPredictionService *prediction.Service
	GlobalRateLimiter       *rate_limiter.RedisRateLimiter
)

func init() {
	InstanceID = uuid.NewString()

	bundlePath := getEnvWithDefault("MODEL_BUNDLE_PATH", DefaultBundlePath)
	GlobalBundleLoader = bundle.NewLoader(bundlePath)
	GlobalMetricsCollector = monitoring.NewMetricsCollector(GlobalBundleLoader)
	GlobalPredictionService = prediction.NewService(GlobalBundleLoader, GlobalMetricsCollector)

	preloadBundle()

	if err := GlobalMetricsCollector.Start(); err != nil {
		slog.Error("指标收集器启动失败", "error", err)
	}

	initRateLimiter()

	slog.Info("服务初始化完成", "instance_id", InstanceID, "bundle_path", bundlePath)
}

// preloadBundle 启动时预加载模型包，加快首次请求
// 失败只记录告警，请求路径会按需重试并向调用方返回服务不可用
func preloadBundle() {
	if _, err := GlobalBundleLoader.Load(); err != nil {
		slog.Warn("模型包预加载失败", "error", err)
	}
}

// initRateLimiter 按开关初始化Redis限流器，未开启或连接失败时不限流
func initRateLimiter() {
	if getEnvWithDefault("RATE_LIMIT_ENABLED", "false") != "true" {
		return
	}

	limiter, err := rate_limiter.NewRedisRateLimiter()
	if err != nil {
		slog.Warn("限流器初始化失败, 预测接口不限流", "error", err)
		return
	}
	GlobalRateLimiter = limiter
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
