/*
 * @module service/prediction/scorer
 * @description 集成打分器，对缩放后的特征行运行全部分类器并按固定权重加权平均出单一风险概率
 * @architecture 分层架构 - 预测服务层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 逐模型推理 -> 权重查找 -> 加权平均
 * @rules 权重分母只累加实际参与打分的模型；模型缺少对应权重立即以配置错误失败，不允许静默补零
 * @dependencies riskscreen-service/service/bundle, riskscreen-service/service/models
 * @refs service/prediction/service.go
 */

package prediction

import (
	"riskscreen-service/service/bundle"
	"riskscreen-service/service/models"
)

// ScoreEnsemble 计算集成风险概率和每个模型的正类概率
func ScoreEnsemble(b *bundle.Bundle, row []float64) (float64, map[string]float64, error) {
	probas := make(map[string]float64, len(b.Models))
	weighted := 0.0
	totalWeight := 0.0

	for name, clf := range b.Models {
		w, ok := b.EnsembleWeights[name]
		if !ok {
			return 0, nil, models.NewConfigurationError("模型 %s 缺少集成权重", name)
		}

		p := clf.PredictProba(row)
		probas[name] = p
		weighted += w * p
		totalWeight += w
	}

	if totalWeight <= 0 {
		return 0, nil, models.NewConfigurationError("参与打分的模型权重之和必须为正数")
	}

	return weighted / totalWeight, probas, nil
}
