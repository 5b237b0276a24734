/*
 * @module service/monitoring/metrics_collector
 * @description 指标收集器，维护预测计数、耗时直方图和模型包加载状态指标，并定时刷新状态
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 指标注册 -> 预测时记录 -> 定时任务刷新模型包状态
 * @rules 指标仅在默认注册表注册一次；定时刷新只读取加载器状态，不触发加载
 * @dependencies github.com/prometheus/client_golang, github.com/robfig/cron/v3,
 *               riskscreen-service/service/bundle
 * @refs service/init.go, service/prediction/service.go
 */

package monitoring

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"

	"riskscreen-service/service/bundle"
)

// MetricsCollector 预测服务指标收集器
type MetricsCollector struct {
	loader *bundle.Loader
	cron   *cron.Cron

	predictionsTotal   *prometheus.CounterVec
	predictionDuration prometheus.Histogram
	bundleLoaded       prometheus.Gauge
}

// NewMetricsCollector 创建指标收集器并在默认注册表注册指标
func NewMetricsCollector(loader *bundle.Loader) *MetricsCollector {
	return &MetricsCollector{
		loader: loader,
		cron:   cron.New(),
		predictionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "riskscreen_predictions_total",
			Help: "按风险等级统计的预测次数",
		}, []string{"risk_level"}),
		predictionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "riskscreen_prediction_duration_seconds",
			Help:    "单次预测流水线耗时",
			Buckets: prometheus.DefBuckets,
		}),
		bundleLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "riskscreen_bundle_loaded",
			Help: "模型包是否已加载 (1=已加载 0=未加载)",
		}),
	}
}

// RecordPrediction 记录一次预测
func (c *MetricsCollector) RecordPrediction(riskLevel string, elapsed time.Duration) {
	c.predictionsTotal.WithLabelValues(riskLevel).Inc()
	c.predictionDuration.Observe(elapsed.Seconds())
}

// refreshBundleStatus 刷新模型包加载状态指标
func (c *MetricsCollector) refreshBundleStatus() {
	if c.loader.Loaded() {
		c.bundleLoaded.Set(1)
	} else {
		c.bundleLoaded.Set(0)
	}
}

// Start 启动定时状态刷新任务
func (c *MetricsCollector) Start() error {
	c.refreshBundleStatus()

	if _, err := c.cron.AddFunc("@every 30s", c.refreshBundleStatus); err != nil {
		return err
	}
	c.cron.Start()

	slog.Info("指标收集器已启动", "refresh_interval", "30s")
	return nil
}

// Stop 停止定时任务
func (c *MetricsCollector) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}
