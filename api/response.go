package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构，status 取 success / error
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AnalyzeResponse 分析成功响应
type AnalyzeResponse struct {
	Status   string  `json:"status"`
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	Language string  `json:"language"`
}

// Success 成功响应
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "success"})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status:  "error",
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// UnsupportedMediaType 415 错误响应
func UnsupportedMediaType(c *gin.Context, message string) {
	Error(c, http.StatusUnsupportedMediaType, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
