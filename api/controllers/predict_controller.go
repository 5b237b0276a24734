/*
 * @module api/controllers/predict_controller
 * @description 风险预测控制器，处理糖尿病风险预测请求并将错误分类映射为HTTP状态码
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 请求解码 -> 默认值填充 -> 预测流水线 -> 响应返回
 * @rules 校验错误映射422，模型包不可用映射503，其余内部错误映射500并附带底层错误信息
 * @dependencies riskscreen-service/service, github.com/go-chi/render
 * @refs service/prediction/service.go, api/routes.go
 */

package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"riskscreen-service/service"
	"riskscreen-service/service/models"
	"riskscreen-service/service/prediction"
)

// PredictController 风险预测控制器
type PredictController struct {
	service *prediction.Service
}

// NewPredictController 创建风险预测控制器实例
func NewPredictController() *PredictController {
	return &PredictController{
		service: service.GlobalPredictionService,
	}
}

// Predict 糖尿病风险预测
// @Summary 糖尿病风险预测
// @Description 根据患者自报健康属性计算糖尿病风险概率、风险等级、关键风险因素和建议
// @Tags 糖尿病
// @Accept json
// @Produce json
// @Param patient body models.PatientInput true "患者健康属性"
// @Success 200 {object} APIResponse{data=models.PredictionResult}
// @Failure 400 {object} APIResponse
// @Failure 422 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /diabetes/predict [post]
func (c *PredictController) Predict(w http.ResponseWriter, r *http.Request) {
	// 先填充文档约定的默认值，再用请求体覆盖
	input := models.NewPatientInput()
	if err := render.DecodeJSON(r.Body, input); err != nil {
		render.Render(w, r, BadRequestResponse("请求参数格式错误", err))
		return
	}

	result, err := c.service.Predict(input)
	if err != nil {
		c.renderPredictError(w, r, err)
		return
	}

	render.Render(w, r, SuccessResponse("预测成功", result))
}

// renderPredictError 将预测流水线的错误分类映射为HTTP响应
func (c *PredictController) renderPredictError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		render.Render(w, r, ValidationErrorResponse("输入校验失败", err))
		return
	}

	var unavailableErr *models.BundleUnavailableError
	if errors.As(err, &unavailableErr) {
		slog.Error("模型包不可用", "error", err)
		render.Render(w, r, ServiceUnavailableResponse("模型服务不可用", err))
		return
	}

	slog.Error("预测失败", "error", err)
	render.Render(w, r, InternalErrorResponse("预测失败", err))
}
