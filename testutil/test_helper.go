/*
 * @module testutil/test_helper
 * @description 测试辅助工具，提供合成模型包、临时制品文件和样例患者输入的构造
 * @architecture 测试层 - 测试数据工厂
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 构造合成制品 -> 注入被测组件 -> 断言
 * @rules 合成模型包经过与生产一致的解码校验路径；缩放器取恒等变换便于手工验算
 * @dependencies riskscreen-service/service/bundle, riskscreen-service/service/models, testing
 * @refs service/prediction, api/controllers
 */

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"riskscreen-service/service/bundle"
	"riskscreen-service/service/models"
)

// BundleJSON 返回一个内部一致的合成模型包制品
// 包含一个逻辑回归和一个单树梯度提升模型，缩放器为恒等变换，便于测试中手工验算
func BundleJSON() []byte {
	return []byte(`{
		"disease": "diabetes",
		"version": "v6",
		"feature_names": [
			"BMI", "Age", "GenHlth", "PhysActivity", "HighBP", "HighChol",
			"CardioRisk", "Lifestyle", "Is_Obese", "Is_Overweight", "BMI_Cat",
			"Is_Senior", "Age_x_BP", "BMI_x_Cardio", "Age_x_GenHlth"
		],
		"scaler": {
			"mean":  [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0],
			"scale": [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
		},
		"models": {
			"logistic_regression": {
				"type": "logistic_regression",
				"coef": [0.02, 0.05, 0.1, -0.1, 0.3, 0.2, 0.25, -0.05, 0.3, 0.15, 0.1, 0.2, 0.02, 0.005, 0.01],
				"intercept": -3.0
			},
			"gradient_boosting": {
				"type": "gradient_boosting",
				"init_score": -1.0,
				"learning_rate": 0.5,
				"trees": [
					{
						"feature":   [0, -1, -1],
						"threshold": [30, 0, 0],
						"left":      [1, -1, -1],
						"right":     [2, -1, -1],
						"value":     [0, -0.4, 0.8]
					}
				]
			}
		},
		"ensemble_weights": {
			"logistic_regression": 0.6,
			"gradient_boosting": 0.4
		},
		"thresholds": {"screening": 0.35, "balanced": 0.5},
		"risk_thresholds": {"low_max": 0.3, "medium_max": 0.6},
		"metrics": {"roc_auc": 0.82, "recall": 0.78, "precision": 0.41}
	}`)
}

// NewTestBundle 解码合成制品，走与生产加载一致的校验路径
func NewTestBundle(t testing.TB) *bundle.Bundle {
	t.Helper()

	b, err := bundle.FromJSON(BundleJSON())
	if err != nil {
		t.Fatalf("合成模型包解码失败: %v", err)
	}
	return b
}

// WriteBundleFile 将合成制品写入临时目录，返回制品路径
func WriteBundleFile(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "diabetes_bundle_v6.json")
	if err := os.WriteFile(path, BundleJSON(), 0o644); err != nil {
		t.Fatalf("写入合成制品失败: %v", err)
	}
	return path
}

// NewScreeningInput 返回文档样例输入: BMI 28.5 的中年高血压高血脂缺乏运动患者
func NewScreeningInput() *models.PatientInput {
	input := models.NewPatientInput()
	input.BMI = 28.5
	input.Age = 7
	input.GenHlth = 3
	input.PhysActivity = 0
	input.HighBP = 1
	input.HighChol = 1
	return input
}

// NewLowRiskInput 返回一个无风险因素触发的健康患者输入
func NewLowRiskInput() *models.PatientInput {
	input := models.NewPatientInput()
	input.BMI = 22
	input.Age = 3
	input.GenHlth = 1
	input.PhysActivity = 1
	input.Fruits = 1
	input.Veggies = 1
	return input
}
