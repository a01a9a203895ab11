package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/code"
	"smarthome-http-service/services"
)

// Response 定义统一的响应格式
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
		Data:    data,
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// ServerError 服务器内部错误响应
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}

// Forbidden 权限不足响应
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrPermissionDenied, nil)
}

// errorCodes 业务错误与错误码的对应关系
var errorCodes = []struct {
	err  error
	code int
}{
	{services.ErrRoomNotFound, code.ErrRoomNotFound},
	{services.ErrInvalidRoomType, code.ErrRoomTypeInvalid},
	{services.ErrDeviceNotFound, code.ErrDeviceNotFound},
	{services.ErrInvalidDeviceType, code.ErrDeviceTypeInvalid},
	{services.ErrDeviceTypeMismatch, code.ErrDeviceTypeMismatch},
	{services.ErrDoorOpen, code.ErrDoorOpen},
	{services.ErrUserNotFound, code.ErrUserNotFound},
	{services.ErrUsernameTaken, code.ErrUserAlreadyExist},
	{services.ErrInvalidCredentials, code.ErrUserPasswordIncorrect},
	{services.ErrCannotDeleteSelf, code.ErrCannotDeleteSelf},
	{services.ErrSessionNotFound, code.ErrTokenInvalid},
	{services.ErrPermissionDenied, code.ErrPermissionDenied},
	{services.ErrAwayModeActive, code.ErrAwayModeActive},
	{services.ErrAwayModeInactive, code.ErrAwayModeInactive},
	{services.ErrInvalidTemperatureRange, code.ErrTemperatureRange},
	{services.ErrInvalidAmortization, code.ErrAmortizationInvalid},
	{services.ErrAmortizationNotFound, code.ErrRecordNotFound},
	{services.ErrValidation, code.ErrValidation},
	{services.ErrKeyNotFound, code.ErrRecordNotFound},
}

// CodeFor 返回错误对应的错误码，未知错误返回 ErrUnknown
func CodeFor(err error) int {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return code.ErrUnknown
}

// FromError 根据业务错误写出失败响应，消息使用错误本身的描述
func FromError(c *gin.Context, err error) {
	errorCode := CodeFor(err)
	if errorCode == code.ErrUnknown {
		FailWithMessage(c, code.ErrStore, code.GetMessage(code.ErrStore)+": "+err.Error(), nil)
		return
	}
	FailWithMessage(c, errorCode, err.Error(), nil)
}
