/*
 * @module service/prediction/service
 * @description 预测流水线服务，编排 校验 -> 取模型包 -> 特征派生 -> 集成打分 -> 分级解释 的完整流程
 * @architecture 分层架构 - 预测服务层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 输入校验 -> 模型包获取 -> 特征派生 -> 集成打分 -> 风险分级与解释 -> 结果组装
 * @rules 流水线除一次性模型包加载外不阻塞网络或磁盘；相同输入与模型包下重复调用结果逐位一致；
 *        失败时不返回任何部分结果
 * @dependencies riskscreen-service/service/bundle, riskscreen-service/service/models,
 *               riskscreen-service/service/monitoring
 * @refs api/controllers/predict_controller.go, service/init.go
 */

package prediction

import (
	"log/slog"
	"math"
	"time"

	"riskscreen-service/service/bundle"
	"riskscreen-service/service/models"
	"riskscreen-service/service/monitoring"
)

// Service 预测流水线服务，持有显式注入的模型包加载器
type Service struct {
	loader  *bundle.Loader
	metrics *monitoring.MetricsCollector
}

// NewService 创建预测流水线服务，metrics 可以为 nil（测试场景）
func NewService(loader *bundle.Loader, metrics *monitoring.MetricsCollector) *Service {
	return &Service{
		loader:  loader,
		metrics: metrics,
	}
}

// round1 四舍五入到一位小数，用于 0-100 概率口径的上报
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Predict 执行一次完整的风险预测
func (s *Service) Predict(input *models.PatientInput) (*models.PredictionResult, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	row, err := DeriveFeatures(b, input)
	if err != nil {
		return nil, err
	}

	prob, probas, err := ScoreEnsemble(b, row)
	if err != nil {
		return nil, err
	}

	level := ClassifyRisk(prob, b.RiskThresholds)

	threshold := b.Thresholds.Screening
	if input.Mode == models.ModeBalanced {
		threshold = b.Thresholds.Balanced
	}

	confidence := make(map[string]float64, len(probas))
	for name, p := range probas {
		confidence[name] = round1(p * 100)
	}

	result := &models.PredictionResult{
		Disease:         b.Disease,
		RiskProbability: round1(prob * 100),
		RiskLevel:       level,
		KeyFactors:      ExplainFactors(input),
		Recommendation:  Recommend(level),
		ThresholdUsed:   threshold,
		ThresholdType:   input.Mode,
		ModelConfidence: confidence,
		Disclaimer:      Disclaimer,
	}

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordPrediction(level, elapsed)
	}
	slog.Debug("预测完成",
		"disease", result.Disease,
		"risk_level", level,
		"risk_probability", result.RiskProbability,
		"mode", input.Mode,
		"duration_ms", elapsed.Milliseconds())

	return result, nil
}

// BundleStatus 透出模型包状态，供健康上报使用
func (s *Service) BundleStatus() *models.BundleStatus {
	return s.loader.Status()
}
