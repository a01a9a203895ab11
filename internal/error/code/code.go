package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 已创建.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 状态冲突.
	StatusConflict = 409
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrInvalidMethod - 400: 无效的方法.
	ErrInvalidMethod
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户名或密码错误.
	ErrUserPasswordIncorrect
	// ErrCannotDeleteSelf - 400: 不能删除当前登录用户.
	ErrCannotDeleteSelf
)

// 设备相关错误码 (102xxx).
const (
	// ErrDeviceNotFound - 404: 设备不存在.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceTypeInvalid - 400: 设备类型无效.
	ErrDeviceTypeInvalid
	// ErrDeviceTypeMismatch - 400: 设备类型不支持该操作.
	ErrDeviceTypeMismatch
	// ErrDoorOpen - 409: 门处于打开状态，无法上锁.
	ErrDoorOpen
)

// 房间相关错误码 (103xxx).
const (
	// ErrRoomNotFound - 404: 房间不存在.
	ErrRoomNotFound int = iota + 103000
	// ErrRoomTypeInvalid - 400: 房间类型无效.
	ErrRoomTypeInvalid
)

// 温控与离家模式相关错误码 (104xxx).
const (
	// ErrAwayModeActive - 409: 离家模式已启用.
	ErrAwayModeActive int = iota + 104000
	// ErrAwayModeInactive - 409: 离家模式未启用.
	ErrAwayModeInactive
	// ErrTemperatureRange - 400: 温度范围无效.
	ErrTemperatureRange
	// ErrAmortizationInvalid - 400: 摊销数据无效.
	ErrAmortizationInvalid
)

// 存储相关错误码 (105xxx).
const (
	// ErrStore - 500: 存储错误.
	ErrStore int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
