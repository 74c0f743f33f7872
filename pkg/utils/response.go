package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 定义了标准的成功响应结构
type SuccessResponse struct {
	Success bool        `json:"success"`           // 恒为 true
	Message string      `json:"message,omitempty"` // 可选的成功消息
	Data    interface{} `json:"data,omitempty"`    // 响应数据
}

// ErrorResponse 定义了标准的错误响应结构
type ErrorResponse struct {
	Success bool        `json:"success"`           // 恒为 false
	Message string      `json:"message"`           // 错误信息
	Details interface{} `json:"details,omitempty"` // 可选的错误详情
}

// RespondSuccess 发送一个标准的成功 JSON 响应
// status: HTTP 状态码 (例如 http.StatusOK, http.StatusCreated)
// data: 要包含在响应中的数据
// message: (可选) 成功消息
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError 发送一个标准的错误 JSON 响应并中止后续处理
// status: HTTP 状态码 (例如 http.StatusBadRequest, http.StatusInternalServerError)
// message: 主要的错误信息
// details: (可选) 额外的错误详情
func RespondError(c *gin.Context, status int, message string, details ...interface{}) {
	response := ErrorResponse{
		Success: false,
		Message: message,
	}
	if len(details) > 0 {
		response.Details = details[0]
	}
	c.AbortWithStatusJSON(status, response)
}

// RespondValidationError 发送用于处理参数校验错误的特定响应
// details 通常是 err.Error() 或更结构化的错误信息
func RespondValidationError(c *gin.Context, details interface{}) {
	RespondError(c, http.StatusBadRequest, "请求参数无效", details)
}

// RespondUnauthorizedError 发送未授权错误
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	errMsg := "未认证或 Token 无效/过期"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondError(c, http.StatusUnauthorized, errMsg)
}

// RespondNotFoundError 发送资源未找到错误
func RespondNotFoundError(c *gin.Context, resourceName string) {
	RespondError(c, http.StatusNotFound, resourceName+"未找到")
}

// RespondInternalServerError 发送服务器内部错误
// errDetails 可以是 err.Error()
func RespondInternalServerError(c *gin.Context, message string, errDetails ...string) {
	var details interface{}
	if len(errDetails) > 0 {
		details = errDetails[0]
	}
	RespondError(c, http.StatusInternalServerError, message, details)
}

// RespondConflictError 发送冲突错误 (例如，资源已存在)
func RespondConflictError(c *gin.Context, message string, details ...string) {
	var detailContent interface{}
	if len(details) > 0 {
		detailContent = details[0]
	}
	RespondError(c, http.StatusConflict, message, detailContent)
}
