/*
 * @module service/bundle/loader
 * @description 模型包加载器，进程生命周期内最多成功加载一次并缓存，失败不缓存以便制品修复后重试
 * @architecture 分层架构 - 模型包层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 首次调用读取制品 -> 解码与一致性校验 -> 缓存只读实例 -> 后续调用直接复用
 * @rules 并发首次调用在互斥保护下只加载一次，调用方不会看到部分初始化的模型包；加载器不自愈不重试
 * @dependencies riskscreen-service/service/models, encoding/json, os, sync
 * @refs service/init.go, service/prediction/service.go
 */

package bundle

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"riskscreen-service/service/models"
)

// Loader 模型包加载器，作为显式句柄在启动时构造并注入流水线
type Loader struct {
	path   string
	mu     sync.RWMutex
	bundle *Bundle
}

// NewLoader 创建模型包加载器
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load 返回缓存的模型包，首次调用时从制品路径加载
// 制品缺失或反序列化失败返回 BundleUnavailableError，内容不一致返回 ConfigurationError
func (l *Loader) Load() (*Bundle, error) {
	l.mu.RLock()
	if l.bundle != nil {
		b := l.bundle
		l.mu.RUnlock()
		return b, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// 互斥区内二次检查，避免并发首次调用重复加载
	if l.bundle != nil {
		return l.bundle, nil
	}

	b, err := l.loadFromFile()
	if err != nil {
		return nil, err
	}

	l.bundle = b
	slog.Info("模型包加载成功",
		"path", l.path,
		"disease", b.Disease,
		"version", b.Version,
		"models", len(b.Models),
		"screening_threshold", b.Thresholds.Screening)
	return b, nil
}

// loadFromFile 读取并解码制品文件，仅在持有写锁时调用
func (l *Loader) loadFromFile() (*Bundle, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &models.BundleUnavailableError{Path: l.path, Err: os.ErrNotExist}
		}
		return nil, &models.BundleUnavailableError{Path: l.path, Err: err}
	}

	b, err := FromJSON(data)
	if err != nil {
		// 制品内容不一致属于配置错误，原样上抛；其余解析失败归类为制品不可用
		var configErr *models.ConfigurationError
		if errors.As(err, &configErr) {
			return nil, err
		}
		return nil, &models.BundleUnavailableError{Path: l.path, Err: err}
	}

	return b, nil
}

// Loaded 返回模型包是否已成功加载
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bundle != nil
}

// Status 返回当前模型包状态，只读且无加载副作用
func (l *Loader) Status() *models.BundleStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()

	status := &models.BundleStatus{Path: l.path}
	if l.bundle == nil {
		return status
	}

	status.Loaded = true
	status.Disease = l.bundle.Disease
	status.Version = l.bundle.Version
	status.ScreeningThreshold = l.bundle.Thresholds.Screening
	status.Metrics = l.bundle.Metrics
	return status
}
