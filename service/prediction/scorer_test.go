/*
 * @module service/prediction/scorer_test
 * @description 集成打分器单元测试
 * @architecture 测试层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 构造分类器桩 -> 打分 -> 与手工加权平均比对
 * @rules 缺少权重必须立即失败，不允许静默补零
 * @dependencies testing, stretchr/testify
 */

package prediction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscreen-service/service/bundle"
	"riskscreen-service/service/models"
)

// fixedClassifier 返回固定概率的分类器桩
type fixedClassifier struct {
	proba float64
}

func (c *fixedClassifier) PredictProba(_ []float64) float64 { return c.proba }
func (c *fixedClassifier) ValidateShape(_ int) error        { return nil }

func TestScoreEnsembleWeightedMean(t *testing.T) {
	b := &bundle.Bundle{
		Models: map[string]bundle.ProbabilityClassifier{
			"a": &fixedClassifier{proba: 0.8},
			"b": &fixedClassifier{proba: 0.2},
		},
		EnsembleWeights: map[string]float64{"a": 3, "b": 1},
	}

	prob, probas, err := ScoreEnsemble(b, nil)
	require.NoError(t, err)

	// (3*0.8 + 1*0.2) / 4
	assert.InDelta(t, 0.65, prob, 1e-12)
	assert.Equal(t, 0.8, probas["a"])
	assert.Equal(t, 0.2, probas["b"])
}

func TestScoreEnsembleBoundedProbability(t *testing.T) {
	b := &bundle.Bundle{
		Models: map[string]bundle.ProbabilityClassifier{
			"a": &fixedClassifier{proba: 0},
			"b": &fixedClassifier{proba: 1},
		},
		EnsembleWeights: map[string]float64{"a": 1, "b": 2},
	}

	prob, _, err := ScoreEnsemble(b, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prob, 0.0)
	assert.LessOrEqual(t, prob, 1.0)
}

func TestScoreEnsembleMissingWeight(t *testing.T) {
	b := &bundle.Bundle{
		Models: map[string]bundle.ProbabilityClassifier{
			"a": &fixedClassifier{proba: 0.8},
			"b": &fixedClassifier{proba: 0.2},
		},
		EnsembleWeights: map[string]float64{"a": 1},
	}

	_, _, err := ScoreEnsemble(b, nil)
	require.Error(t, err)

	var configErr *models.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestScoreEnsembleZeroTotalWeight(t *testing.T) {
	b := &bundle.Bundle{
		Models: map[string]bundle.ProbabilityClassifier{
			"a": &fixedClassifier{proba: 0.8},
		},
		EnsembleWeights: map[string]float64{"a": 0},
	}

	_, _, err := ScoreEnsemble(b, nil)
	require.Error(t, err)

	var configErr *models.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}
