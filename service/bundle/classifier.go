/*
 * @module service/bundle/classifier
 * @description 分类器定义，统一的正类概率预测能力和三种具体模型形态的实现与解码
 * @architecture 分层架构 - 模型包层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow JSON模型定义 -> type标签分发解码 -> PredictProba推理
 * @rules 集成打分只依赖 ProbabilityClassifier 能力，不依赖具体模型类型
 * @dependencies encoding/json, math
 * @refs service/bundle/bundle.go, service/prediction/scorer.go
 */

package bundle

import (
	"encoding/json"
	"fmt"
	"math"
)

// 分类器类型标签，与离线训练导出脚本保持一致
const (
	ClassifierLogisticRegression = "logistic_regression"
	ClassifierGradientBoosting   = "gradient_boosting"
	ClassifierRandomForest       = "random_forest"
)

// ProbabilityClassifier 统一的二分类概率预测能力
type ProbabilityClassifier interface {
	// PredictProba 返回缩放后特征行的正类概率
	PredictProba(features []float64) float64
	// ValidateShape 校验模型结构与特征维度是否匹配
	ValidateShape(featureCount int) error
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// LogisticRegression 逻辑回归分类器
type LogisticRegression struct {
	Type      string    `json:"type"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (m *LogisticRegression) PredictProba(features []float64) float64 {
	z := m.Intercept
	for i, w := range m.Coef {
		z += w * features[i]
	}
	return sigmoid(z)
}

func (m *LogisticRegression) ValidateShape(featureCount int) error {
	if len(m.Coef) != featureCount {
		return fmt.Errorf("系数维度 %d 与特征数 %d 不一致", len(m.Coef), featureCount)
	}
	return nil
}

// DecisionTree 扁平数组编码的决策树, feature[i] < 0 表示叶节点
type DecisionTree struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

// Predict 从根节点遍历到叶节点并返回叶值
func (t *DecisionTree) Predict(features []float64) float64 {
	node := 0
	// 树在加载时已校验无环，节点数即遍历步数上限
	for steps := 0; steps < len(t.Feature); steps++ {
		f := t.Feature[node]
		if f < 0 {
			break
		}
		if features[f] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return t.Value[node]
}

func (t *DecisionTree) validateShape(featureCount int) error {
	n := len(t.Feature)
	if n == 0 {
		return fmt.Errorf("决策树为空")
	}
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("决策树各数组长度不一致")
	}
	for i := 0; i < n; i++ {
		if t.Feature[i] >= featureCount {
			return fmt.Errorf("节点 %d 引用的特征下标 %d 越界", i, t.Feature[i])
		}
		if t.Feature[i] >= 0 {
			if t.Left[i] < 0 || t.Left[i] >= n || t.Right[i] < 0 || t.Right[i] >= n {
				return fmt.Errorf("节点 %d 的子节点下标越界", i)
			}
			if t.Left[i] <= i || t.Right[i] <= i {
				return fmt.Errorf("节点 %d 的子节点下标未递增, 树结构存在环", i)
			}
		}
	}
	return nil
}

// GradientBoosting 梯度提升分类器，回归树累加对数几率后过 sigmoid
type GradientBoosting struct {
	Type         string         `json:"type"`
	InitScore    float64        `json:"init_score"`
	LearningRate float64        `json:"learning_rate"`
	Trees        []DecisionTree `json:"trees"`
}

func (m *GradientBoosting) PredictProba(features []float64) float64 {
	score := m.InitScore
	for i := range m.Trees {
		score += m.LearningRate * m.Trees[i].Predict(features)
	}
	return sigmoid(score)
}

func (m *GradientBoosting) ValidateShape(featureCount int) error {
	if len(m.Trees) == 0 {
		return fmt.Errorf("梯度提升模型不包含任何树")
	}
	for i := range m.Trees {
		if err := m.Trees[i].validateShape(featureCount); err != nil {
			return fmt.Errorf("第 %d 棵树无效: %w", i, err)
		}
	}
	return nil
}

// RandomForest 随机森林分类器，叶值为正类样本占比，取所有树的均值
type RandomForest struct {
	Type  string         `json:"type"`
	Trees []DecisionTree `json:"trees"`
}

func (m *RandomForest) PredictProba(features []float64) float64 {
	sum := 0.0
	for i := range m.Trees {
		sum += m.Trees[i].Predict(features)
	}
	return sum / float64(len(m.Trees))
}

func (m *RandomForest) ValidateShape(featureCount int) error {
	if len(m.Trees) == 0 {
		return fmt.Errorf("随机森林不包含任何树")
	}
	for i := range m.Trees {
		if err := m.Trees[i].validateShape(featureCount); err != nil {
			return fmt.Errorf("第 %d 棵树无效: %w", i, err)
		}
	}
	return nil
}

// DecodeClassifier 按 type 标签解码单个分类器定义
func DecodeClassifier(raw json.RawMessage) (ProbabilityClassifier, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("解析模型类型失败: %w", err)
	}

	switch tag.Type {
	case ClassifierLogisticRegression:
		var m LogisticRegression
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("解析逻辑回归模型失败: %w", err)
		}
		return &m, nil
	case ClassifierGradientBoosting:
		var m GradientBoosting
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("解析梯度提升模型失败: %w", err)
		}
		return &m, nil
	case ClassifierRandomForest:
		var m RandomForest
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("解析随机森林模型失败: %w", err)
		}
		return &m, nil
	default:
		return nil, fmt.Errorf("不支持的模型类型: %q", tag.Type)
	}
}
