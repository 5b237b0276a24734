/*
 * @module api/controllers/health_controller
 * @description 健康检查控制器，提供服务健康状态、就绪状态和模型包健康探针
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow HTTP请求处理流程
 * @rules 模型健康探针只读取模型包状态，不触发加载，无副作用
 * @dependencies riskscreen-service/service, github.com/go-chi/render
 * @refs service/bundle/loader.go, api/routes.go
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"riskscreen-service/service"
)

// ServiceVersion 服务版本号
const ServiceVersion = "1.0.0"

// ServiceName 服务名称
const ServiceName = "riskscreen-service"

// HealthController 健康检查控制器
type HealthController struct{}

// NewHealthController 创建健康检查控制器实例
func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status     string    `json:"status" example:"ok"`
	Timestamp  time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version    string    `json:"version" example:"1.0.0"`
	Service    string    `json:"service" example:"riskscreen-service"`
	InstanceID string    `json:"instance_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// ServiceInfoResponse 服务信息响应结构
type ServiceInfoResponse struct {
	Service string `json:"service" example:"riskscreen-service"`
	Version string `json:"version" example:"1.0.0"`
	Status  string `json:"status" example:"running"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}

// ModelHealthResponse 模型健康探针响应结构
type ModelHealthResponse struct {
	Status     string             `json:"status" example:"healthy"`
	Model      string             `json:"model,omitempty" example:"diabetes_model_v6"`
	Threshold  float64            `json:"threshold,omitempty" example:"0.35"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	BundlePath string             `json:"bundle_path"`
	Loaded     bool               `json:"loaded"`
}

// Info 服务信息
// @Summary 服务信息
// @Description 获取服务名称、版本和文档入口
// @Tags 系统
// @Produce json
// @Success 200 {object} ServiceInfoResponse
// @Router / [get]
func (c *HealthController) Info(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ServiceInfoResponse{
		Service: ServiceName,
		Version: ServiceVersion,
		Status:  "running",
		Docs:    "/swagger/index.html",
	})
}

// Health 健康检查
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now(),
		Version:    ServiceVersion,
		Service:    ServiceName,
		InstanceID: service.InstanceID,
	})
}

// Ready 就绪检查
// @Summary 就绪检查
// @Description 检查服务是否就绪
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:     "ready",
		Timestamp:  time.Now(),
		Version:    ServiceVersion,
		Service:    ServiceName,
		InstanceID: service.InstanceID,
	})
}

// ModelHealth 模型健康探针
// @Summary 模型健康探针
// @Description 获取模型包加载状态、当前筛查阈值和训练质量指标，只读无副作用
// @Tags 糖尿病
// @Produce json
// @Success 200 {object} ModelHealthResponse
// @Router /diabetes/health [get]
func (c *HealthController) ModelHealth(w http.ResponseWriter, r *http.Request) {
	status := service.GlobalPredictionService.BundleStatus()

	resp := ModelHealthResponse{
		Status:     "unhealthy",
		BundlePath: status.Path,
		Loaded:     status.Loaded,
	}
	if status.Loaded {
		resp.Status = "healthy"
		resp.Model = status.Disease + "_model_" + status.Version
		resp.Threshold = status.ScreeningThreshold
		resp.Metrics = status.Metrics
	}

	render.JSON(w, r, resp)
}
