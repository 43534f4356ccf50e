package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalMu     sync.RWMutex
	globalLogger *ZapLogger

	fallbackOnce sync.Once
	fallback     *ZapLogger
)

// SetGlobalLogger installs the process-wide logger. Call it once from
// main before any package logs.
func SetGlobalLogger(logger *ZapLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the installed logger, or a production fallback
// when nothing was installed (tests, early startup).
func GetGlobalLogger() *ZapLogger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()

	if l != nil {
		return l
	}

	fallbackOnce.Do(func() {
		zl, _ := zap.NewProduction()
		fallback = &ZapLogger{Logger: zl}
	})
	return fallback
}

// Info logs at info level through the global logger.
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs at warn level through the global logger.
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs at debug level through the global logger.
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs at error level through the global logger.
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs at fatal level through the global logger and exits.
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}
