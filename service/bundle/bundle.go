/*
 * @module service/bundle/bundle
 * @description 模型包定义，封装离线训练产出的缩放器、分类器集合、集成权重、特征顺序和阈值配置
 * @architecture 分层架构 - 模型包层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 制品反序列化 -> 分类器解码 -> 一致性校验 -> 只读使用
 * @rules 模型包加载后不可变；内部不一致在加载时即以 ConfigurationError 失败，不延迟到首次预测
 * @dependencies riskscreen-service/service/models, encoding/json
 * @refs service/bundle/loader.go, service/prediction
 */

package bundle

import (
	"encoding/json"
	"fmt"

	"riskscreen-service/service/models"
)

// Scaler 标准化缩放器，mean/scale 两个数组与 feature_names 顺序对齐
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform 对单行特征逐元素做仿射变换 (x-mean)/scale
func (s *Scaler) Transform(row []float64) []float64 {
	scaled := make([]float64, len(row))
	for i, v := range row {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return scaled
}

// Thresholds 两个仅用于上报的决策概率阈值，对应不同的漏报容忍度
type Thresholds struct {
	Screening float64 `json:"screening"`
	Balanced  float64 `json:"balanced"`
}

// RiskThresholds 风险等级概率上界: [0,low_max)=low [low_max,medium_max)=medium [medium_max,1]=high
type RiskThresholds struct {
	LowMax    float64 `json:"low_max"`
	MediumMax float64 `json:"medium_max"`
}

// Bundle 不可变的模型包制品
type Bundle struct {
	Disease         string                           `json:"disease"`
	Version         string                           `json:"version"`
	FeatureNames    []string                         `json:"feature_names"`
	Scaler          Scaler                           `json:"scaler"`
	RawModels       map[string]json.RawMessage       `json:"models"`
	EnsembleWeights map[string]float64               `json:"ensemble_weights"`
	Thresholds      Thresholds                       `json:"thresholds"`
	RiskThresholds  RiskThresholds                   `json:"risk_thresholds"`
	Metrics         map[string]float64               `json:"metrics"`
	Models          map[string]ProbabilityClassifier `json:"-"`
}

// FromJSON 反序列化模型包制品，解码全部分类器并做一致性校验
// 反序列化失败返回普通错误（由调用方归类为制品不可用），内容不一致返回 ConfigurationError
func FromJSON(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("解析模型包制品失败: %w", err)
	}

	if err := b.decodeModels(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// decodeModels 将原始JSON模型定义解码为分类器实例
func (b *Bundle) decodeModels() error {
	b.Models = make(map[string]ProbabilityClassifier, len(b.RawModels))
	for name, raw := range b.RawModels {
		clf, err := DecodeClassifier(raw)
		if err != nil {
			return models.NewConfigurationError("模型 %s 解码失败: %v", name, err)
		}
		b.Models[name] = clf
	}
	return nil
}

// Validate 校验模型包内部一致性
func (b *Bundle) Validate() error {
	if len(b.Models) == 0 {
		return models.NewConfigurationError("模型包不包含任何模型")
	}

	if len(b.FeatureNames) == 0 {
		return models.NewConfigurationError("模型包缺少特征名顺序 feature_names")
	}

	// 权重与模型键集合必须双向一致
	for name := range b.Models {
		if _, ok := b.EnsembleWeights[name]; !ok {
			return models.NewConfigurationError("模型 %s 缺少集成权重", name)
		}
	}
	for name := range b.EnsembleWeights {
		if _, ok := b.Models[name]; !ok {
			return models.NewConfigurationError("集成权重 %s 没有对应的模型", name)
		}
	}

	total := 0.0
	for name, w := range b.EnsembleWeights {
		if w < 0 {
			return models.NewConfigurationError("模型 %s 的集成权重 %g 为负", name, w)
		}
		total += w
	}
	if total <= 0 {
		return models.NewConfigurationError("集成权重之和必须为正数, 当前为 %g", total)
	}

	featureCount := len(b.FeatureNames)
	if len(b.Scaler.Mean) != featureCount || len(b.Scaler.Scale) != featureCount {
		return models.NewConfigurationError("缩放器维度 (mean=%d, scale=%d) 与特征数 %d 不一致",
			len(b.Scaler.Mean), len(b.Scaler.Scale), featureCount)
	}
	for i, s := range b.Scaler.Scale {
		if s == 0 {
			return models.NewConfigurationError("缩放器第 %d 列 (%s) 的 scale 为 0", i, b.FeatureNames[i])
		}
	}

	for name, clf := range b.Models {
		if err := clf.ValidateShape(featureCount); err != nil {
			return models.NewConfigurationError("模型 %s 结构无效: %v", name, err)
		}
	}

	rt := b.RiskThresholds
	if rt.LowMax < 0 || rt.LowMax > rt.MediumMax || rt.MediumMax > 1 {
		return models.NewConfigurationError("风险阈值无效: 需满足 0 <= low_max(%g) <= medium_max(%g) <= 1",
			rt.LowMax, rt.MediumMax)
	}

	return nil
}
