package services

import "errors"

// 业务错误，控制器通过 errors.Is 映射为错误码
var (
	ErrKeyNotFound = errors.New("key not found")

	ErrRoomNotFound       = errors.New("room not found")
	ErrInvalidRoomType    = errors.New("invalid room type")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrInvalidDeviceType  = errors.New("invalid device type")
	ErrDeviceTypeMismatch = errors.New("operation not supported for this device type")
	ErrDoorOpen           = errors.New("cannot lock an open door")

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCannotDeleteSelf   = errors.New("cannot delete the current user")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrAwayModeActive          = errors.New("away mode is already active")
	ErrAwayModeInactive        = errors.New("away mode is not active")
	ErrInvalidTemperatureRange = errors.New("invalid temperature range")

	ErrInvalidAmortization  = errors.New("invalid amortization data")
	ErrAmortizationNotFound = errors.New("amortization record not found")

	ErrValidation = errors.New("validation failed")
)
