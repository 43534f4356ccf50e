package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases zap.Field so packages log structured fields without
// importing zap themselves.
type Field = zap.Field

// String constructs a field carrying a string value.
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field carrying an error under the "error" key.
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field carrying an int value.
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Float64 constructs a field carrying a float64 value, used for
// coordinates and speeds.
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Duration constructs a field carrying a time.Duration value.
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Time constructs a field carrying a time.Time value.
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}
