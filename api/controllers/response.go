package controllers

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIResponse 统一API响应结构
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data,omitempty"`

	httpStatus int
}

// Render 实现 render.Renderer，写入对应的HTTP状态码
func (resp *APIResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, resp.httpStatus)
	return nil
}

// SuccessResponse 创建成功响应
func SuccessResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: 0, Msg: msg, Data: data, httpStatus: http.StatusOK}
}

// errorResponse 创建携带错误详情的失败响应
func errorResponse(httpStatus int, msg string, err error) *APIResponse {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	return &APIResponse{Status: httpStatus, Msg: msg, httpStatus: httpStatus}
}

// BadRequestResponse 创建请求参数错误响应
func BadRequestResponse(msg string, err error) *APIResponse {
	return errorResponse(http.StatusBadRequest, msg, err)
}

// ValidationErrorResponse 创建输入校验失败响应
func ValidationErrorResponse(msg string, err error) *APIResponse {
	return errorResponse(http.StatusUnprocessableEntity, msg, err)
}

// ServiceUnavailableResponse 创建服务不可用响应
func ServiceUnavailableResponse(msg string, err error) *APIResponse {
	return errorResponse(http.StatusServiceUnavailable, msg, err)
}

// InternalErrorResponse 创建内部错误响应
func InternalErrorResponse(msg string, err error) *APIResponse {
	return errorResponse(http.StatusInternalServerError, msg, err)
}

// TooManyRequestsResponse 创建限流超限响应
func TooManyRequestsResponse(msg string) *APIResponse {
	return errorResponse(http.StatusTooManyRequests, msg, nil)
}
