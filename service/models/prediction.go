/*
 * @module service/models/prediction
 * @description 预测结果与模型包状态模型，结果结构与下游后端约定的存储格式保持一致
 * @architecture 分层架构 - 共享模型层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 流水线产出结果 -> 控制器封装响应 -> 下游后端落库
 * @rules 结果要么完整要么失败，不存在降级的部分结果；相同输入重复调用产出逐位一致的结果
 * @dependencies 无外部依赖
 * @refs service/prediction/service.go, api/controllers/health_controller.go
 */

package models

// 风险等级
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// PredictionResult 单次预测的完整结果
type PredictionResult struct {
	Disease         string             `json:"disease" example:"diabetes"`
	RiskProbability float64            `json:"risk_probability" example:"42.7"` // 0-100
	RiskLevel       string             `json:"risk_level" example:"medium"`
	KeyFactors      []string           `json:"key_factors"`
	Recommendation  string             `json:"recommendation"`
	ThresholdUsed   float64            `json:"threshold_used" example:"0.35"`
	ThresholdType   string             `json:"threshold_type" example:"screening"`
	ModelConfidence map[string]float64 `json:"model_confidence"` // 每个模型的概率, 0-100
	Disclaimer      string             `json:"disclaimer"`
}

// BundleStatus 模型包当前状态，仅用于健康上报，读取无副作用
type BundleStatus struct {
	Loaded             bool               `json:"loaded"`
	Path               string             `json:"path"`
	Disease            string             `json:"disease,omitempty"`
	Version            string             `json:"version,omitempty"`
	ScreeningThreshold float64            `json:"screening_threshold,omitempty"`
	Metrics            map[string]float64 `json:"metrics,omitempty"`
}
