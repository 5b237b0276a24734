/*
 * @module service/prediction/risk
 * @description 风险分级与解释器，将概率映射为风险等级，从原始输入提取关键风险因素并给出建议文案
 * @architecture 分层架构 - 预测服务层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 概率分级 -> 按固定优先级提取风险因素 -> 按等级查建议表
 * @rules 风险因素只检查原始输入字段不检查派生特征；因素列表永不为空；建议表对三个等级全覆盖
 * @dependencies riskscreen-service/service/bundle, riskscreen-service/service/models
 * @refs service/prediction/service.go
 */

package prediction

import (
	"fmt"

	"riskscreen-service/service/bundle"
	"riskscreen-service/service/models"
)

// Disclaimer 固定的免责声明，随每个预测结果返回
const Disclaimer = "Screening only. Does not replace medical diagnosis."

// NoRiskFlagsMessage 无风险因素触发时的中性提示
const NoRiskFlagsMessage = "No major risk flags — maintain healthy lifestyle"

// recommendations 按风险等级的固定建议表
var recommendations = map[string]string{
	models.RiskLevelLow:    "Low risk. Stay active and screen annually after age 45.",
	models.RiskLevelMedium: "Moderate risk. Schedule HbA1c and fasting glucose test.",
	models.RiskLevelHigh:   "High risk. Consult a doctor urgently for HbA1c and OGTT.",
}

// ClassifyRisk 将概率映射为风险等级，在 [0,1] 上全函数
func ClassifyRisk(prob float64, rt bundle.RiskThresholds) string {
	switch {
	case prob < rt.LowMax:
		return models.RiskLevelLow
	case prob < rt.MediumMax:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelHigh
	}
}

// ExplainFactors 按固定优先级从原始输入提取人类可读的风险因素
// 肥胖与超重互斥，优先报告肥胖；没有任何因素触发时返回单条中性提示
func ExplainFactors(p *models.PatientInput) []string {
	factors := make([]string, 0, 8)

	if p.HighBP == 1 {
		factors = append(factors, "High blood pressure")
	}
	if p.BMI >= 30 {
		factors = append(factors, fmt.Sprintf("Obesity (BMI %.1f)", p.BMI))
	} else if p.BMI >= 25 {
		factors = append(factors, fmt.Sprintf("Overweight (BMI %.1f)", p.BMI))
	}
	if p.HighChol == 1 {
		factors = append(factors, "High cholesterol")
	}
	if p.PhysActivity == 0 {
		factors = append(factors, "Physical inactivity")
	}
	if p.Age >= 9 {
		factors = append(factors, "Age 60+ years")
	}
	if p.HeartDiseaseorAttack == 1 {
		factors = append(factors, "Heart disease history")
	}
	if p.Stroke == 1 {
		factors = append(factors, "Prior stroke")
	}
	if p.HvyAlcoholConsump == 1 {
		factors = append(factors, "Heavy alcohol use")
	}
	if p.GenHlth >= 4 {
		factors = append(factors, "Poor self-reported health")
	}

	if len(factors) == 0 {
		factors = append(factors, NoRiskFlagsMessage)
	}
	return factors
}

// Recommend 返回风险等级对应的建议文案
func Recommend(level string) string {
	return recommendations[level]
}
