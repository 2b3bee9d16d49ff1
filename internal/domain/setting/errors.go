package setting

import "errors"

var (
	// ErrInvalidSettingKey is returned when the setting key is empty or malformed
	ErrInvalidSettingKey = errors.New("invalid setting key")

	// ErrInvalidValueType is returned when a value cannot be read as the requested type
	ErrInvalidValueType = errors.New("invalid value type")
)
