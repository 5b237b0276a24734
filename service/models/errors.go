/*
 * @module service/models/errors
 * @description 预测服务错误分类定义，区分输入校验错误、模型包配置错误和模型包不可用错误
 * @architecture 分层架构 - 共享模型层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 错误产生 -> errors.As 识别 -> HTTP状态码映射
 * @rules 校验错误和配置错误不允许自动重试，模型包不可用错误可在修复制品后由调用方重试
 * @dependencies fmt
 * @refs api/controllers/predict_controller.go, service/bundle/loader.go
 */

package models

import "fmt"

// ValidationError 输入校验错误，调用方提供的数据违反了字段约束
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("输入校验失败: 字段 %s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("输入校验失败: %s", e.Message)
}

// NewValidationError 创建输入校验错误
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError 模型包配置错误，已加载的制品内部不一致
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("模型包配置错误: %s", e.Message)
}

// NewConfigurationError 创建模型包配置错误
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// BundleUnavailableError 模型包不可用错误，制品缺失或反序列化失败
type BundleUnavailableError struct {
	Path string
	Err  error
}

func (e *BundleUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("模型包不可用: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("模型包不可用: %s", e.Path)
}

func (e *BundleUnavailableError) Unwrap() error {
	return e.Err
}
