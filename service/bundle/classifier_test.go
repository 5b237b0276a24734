/*
 * @module service/bundle/classifier_test
 * @description 分类器单元测试，使用手工可验算的小模型校验推理与结构校验
 * @architecture 测试层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 构造模型 -> 推理 -> 与手工计算结果比对
 * @rules 概率断言使用手工计算的期望值
 * @dependencies testing, stretchr/testify
 */

package bundle

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stumpOnFeature 返回一棵在指定特征上以阈值划分的单层树
func stumpOnFeature(feature int, threshold, leftValue, rightValue float64) DecisionTree {
	return DecisionTree{
		Feature:   []int{feature, -1, -1},
		Threshold: []float64{threshold, 0, 0},
		Left:      []int{1, -1, -1},
		Right:     []int{2, -1, -1},
		Value:     []float64{0, leftValue, rightValue},
	}
}

func TestLogisticRegressionPredictProba(t *testing.T) {
	m := &LogisticRegression{
		Coef:      []float64{0.5, -0.25},
		Intercept: 0.1,
	}

	// z = 0.1 + 0.5*2 - 0.25*4 = 0.1
	p := m.PredictProba([]float64{2, 4})
	expected := 1.0 / (1.0 + math.Exp(-0.1))
	assert.InDelta(t, expected, p, 1e-12)
}

func TestLogisticRegressionShapeMismatch(t *testing.T) {
	m := &LogisticRegression{Coef: []float64{0.5, -0.25}}

	assert.NoError(t, m.ValidateShape(2))
	assert.Error(t, m.ValidateShape(3))
}

func TestDecisionTreePredict(t *testing.T) {
	tree := stumpOnFeature(0, 30, -0.4, 0.8)

	assert.Equal(t, -0.4, tree.Predict([]float64{28.5}))
	assert.Equal(t, -0.4, tree.Predict([]float64{30})) // 阈值含左
	assert.Equal(t, 0.8, tree.Predict([]float64{30.1}))
}

func TestGradientBoostingPredictProba(t *testing.T) {
	m := &GradientBoosting{
		InitScore:    -1.0,
		LearningRate: 0.5,
		Trees: []DecisionTree{
			stumpOnFeature(0, 30, -0.4, 0.8),
			stumpOnFeature(1, 5, 0.2, 0.6),
		},
	}

	// score = -1.0 + 0.5*(-0.4) + 0.5*0.6 = -0.9
	p := m.PredictProba([]float64{28.5, 7})
	expected := 1.0 / (1.0 + math.Exp(0.9))
	assert.InDelta(t, expected, p, 1e-12)
}

func TestRandomForestPredictProba(t *testing.T) {
	m := &RandomForest{
		Trees: []DecisionTree{
			stumpOnFeature(0, 30, 0.2, 0.9),
			stumpOnFeature(0, 25, 0.1, 0.7),
		},
	}

	// BMI 28: (0.2 + 0.7) / 2
	assert.InDelta(t, 0.45, m.PredictProba([]float64{28}), 1e-12)
}

func TestTreeShapeValidation(t *testing.T) {
	tests := []struct {
		name string
		tree DecisionTree
	}{
		{
			name: "数组长度不一致",
			tree: DecisionTree{
				Feature:   []int{0, -1},
				Threshold: []float64{30},
				Left:      []int{1, -1},
				Right:     []int{1, -1},
				Value:     []float64{0, 0.5},
			},
		},
		{
			name: "特征下标越界",
			tree: stumpOnFeature(9, 30, 0.1, 0.2),
		},
		{
			name: "子节点下标未递增",
			tree: DecisionTree{
				Feature:   []int{0, 0, -1},
				Threshold: []float64{30, 20, 0},
				Left:      []int{1, 0, -1},
				Right:     []int{2, 2, -1},
				Value:     []float64{0, 0, 0.5},
			},
		},
		{
			name: "空树",
			tree: DecisionTree{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &RandomForest{Trees: []DecisionTree{tt.tree}}
			assert.Error(t, m.ValidateShape(2))
		})
	}
}

func TestDecodeClassifier(t *testing.T) {
	raw := json.RawMessage(`{"type":"logistic_regression","coef":[0.5],"intercept":-1}`)
	clf, err := DecodeClassifier(raw)
	require.NoError(t, err)

	_, ok := clf.(*LogisticRegression)
	assert.True(t, ok)
}

func TestDecodeClassifierUnknownType(t *testing.T) {
	_, err := DecodeClassifier(json.RawMessage(`{"type":"svm"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不支持的模型类型")
}

func TestDecodeClassifierInvalidJSON(t *testing.T) {
	_, err := DecodeClassifier(json.RawMessage(`{`))
	assert.Error(t, err)
}
