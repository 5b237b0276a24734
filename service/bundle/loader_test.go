/*
 * @module service/bundle/loader_test
 * @description 模型包加载器单元测试，覆盖缺失制品、制品修复后重试、并发首次加载和只读状态
 * @architecture 测试层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 构造临时制品 -> 加载 -> 断言缓存与错误分类
 * @rules 失败不缓存，成功后进程内只保留同一实例
 * @dependencies testing, stretchr/testify
 */

package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskscreen-service/service/models"
)

const loaderTestArtifact = `{
	"disease": "diabetes",
	"version": "v6",
	"feature_names": ["BMI", "Age"],
	"scaler": {"mean": [27, 8], "scale": [6, 3]},
	"models": {
		"logistic_regression": {"type": "logistic_regression", "coef": [0.4, 0.2], "intercept": -1}
	},
	"ensemble_weights": {"logistic_regression": 1},
	"thresholds": {"screening": 0.35, "balanced": 0.5},
	"risk_thresholds": {"low_max": 0.3, "medium_max": 0.6},
	"metrics": {"roc_auc": 0.8}
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReturnsCachedInstance(t *testing.T) {
	loader := NewLoader(writeArtifact(t, loaderTestArtifact))

	first, err := loader.Load()
	require.NoError(t, err)

	second, err := loader.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadMissingArtifact(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.json"))

	_, err := loader.Load()
	require.Error(t, err)

	var unavailableErr *models.BundleUnavailableError
	require.True(t, errors.As(err, &unavailableErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, loader.Loaded())
}

// TestLoadRecoversAfterArtifactAppears 制品缺失导致的失败不缓存，制品就位后的下一次调用应成功
func TestLoadRecoversAfterArtifactAppears(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.json")
	loader := NewLoader(path)

	_, err := loader.Load()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(loaderTestArtifact), 0o644))

	b, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "diabetes", b.Disease)
	assert.True(t, loader.Loaded())
}

func TestLoadMalformedArtifact(t *testing.T) {
	loader := NewLoader(writeArtifact(t, `{"disease": "diab`))

	_, err := loader.Load()
	require.Error(t, err)

	var unavailableErr *models.BundleUnavailableError
	assert.True(t, errors.As(err, &unavailableErr))
}

func TestLoadInconsistentArtifact(t *testing.T) {
	// 权重引用不存在的模型，属于配置错误而非制品不可用
	artifact := `{
		"disease": "diabetes",
		"feature_names": ["BMI"],
		"scaler": {"mean": [27], "scale": [6]},
		"models": {
			"logistic_regression": {"type": "logistic_regression", "coef": [0.4], "intercept": -1}
		},
		"ensemble_weights": {"ghost_model": 1},
		"risk_thresholds": {"low_max": 0.3, "medium_max": 0.6}
	}`
	loader := NewLoader(writeArtifact(t, artifact))

	_, err := loader.Load()
	require.Error(t, err)

	var configErr *models.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
	assert.False(t, loader.Loaded())
}

// TestConcurrentFirstLoad 并发首次调用只加载一次，所有调用方拿到同一实例
func TestConcurrentFirstLoad(t *testing.T) {
	loader := NewLoader(writeArtifact(t, loaderTestArtifact))

	const goroutines = 32
	results := make([]*Bundle, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			b, err := loader.Load()
			assert.NoError(t, err)
			results[idx] = b
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestStatusIsReadOnly(t *testing.T) {
	loader := NewLoader(writeArtifact(t, loaderTestArtifact))

	// 未加载时状态只读，不触发加载
	status := loader.Status()
	assert.False(t, status.Loaded)
	assert.False(t, loader.Loaded())

	_, err := loader.Load()
	require.NoError(t, err)

	status = loader.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, "diabetes", status.Disease)
	assert.Equal(t, "v6", status.Version)
	assert.Equal(t, 0.35, status.ScreeningThreshold)
	assert.Equal(t, 0.8, status.Metrics["roc_auc"])
}
