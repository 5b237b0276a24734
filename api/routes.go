/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers, service
 */

package api

import (
	"riskscreen-service/api/controllers"
	apimiddleware "riskscreen-service/api/middleware"
	"riskscreen-service/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置，筛查接口与原服务一致保持开放
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 服务信息与健康检查
	healthController := controllers.NewHealthController()
	r.Get("/", healthController.Info)
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 糖尿病风险筛查
	predictController := controllers.NewPredictController()
	r.Route("/diabetes", func(r chi.Router) {
		r.Use(apimiddleware.RateLimit(service.GlobalRateLimiter))
		r.Post("/predict", predictController.Predict)
		r.Get("/health", healthController.ModelHealth)
	})
}
