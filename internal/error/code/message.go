package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrTooManyRequests:  "请求频率过高，请稍后再试",
	ErrPermissionDenied: "权限不足",
	ErrInvalidMethod:    "无效的方法",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户名已存在",
	ErrUserPasswordIncorrect: "用户名或密码错误",
	ErrCannotDeleteSelf:      "不能删除当前登录用户",

	// 设备相关错误码
	ErrDeviceNotFound:     "设备不存在",
	ErrDeviceTypeInvalid:  "设备类型无效",
	ErrDeviceTypeMismatch: "设备类型不支持该操作",
	ErrDoorOpen:           "门处于打开状态，无法上锁",

	// 房间相关错误码
	ErrRoomNotFound:    "房间不存在",
	ErrRoomTypeInvalid: "房间类型无效",

	// 温控与离家模式相关错误码
	ErrAwayModeActive:      "离家模式已启用",
	ErrAwayModeInactive:    "离家模式未启用",
	ErrTemperatureRange:    "温度范围无效",
	ErrAmortizationInvalid: "摊销数据无效",

	// 存储相关错误码
	ErrStore:          "存储错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrTooManyRequests:  StatusTooManyRequests,
	ErrPermissionDenied: StatusForbidden,
	ErrInvalidMethod:    StatusBadRequest,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrCannotDeleteSelf:      StatusBadRequest,

	// 设备相关错误码
	ErrDeviceNotFound:     StatusNotFound,
	ErrDeviceTypeInvalid:  StatusBadRequest,
	ErrDeviceTypeMismatch: StatusBadRequest,
	ErrDoorOpen:           StatusConflict,

	// 房间相关错误码
	ErrRoomNotFound:    StatusNotFound,
	ErrRoomTypeInvalid: StatusBadRequest,

	// 温控与离家模式相关错误码
	ErrAwayModeActive:      StatusConflict,
	ErrAwayModeInactive:    StatusConflict,
	ErrTemperatureRange:    StatusBadRequest,
	ErrAmortizationInvalid: StatusBadRequest,

	// 存储相关错误码
	ErrStore:          StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
