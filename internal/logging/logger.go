package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "STOREADMIN_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks STOREADMIN_LOG_LEVEL.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// parseLevel maps a level name onto a zap level. Unknown names fall back to
// info, since the user asked for output of some kind.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitializeFromEnv initializes the logger from STOREADMIN_LOG_LEVEL.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Stay silent if nobody initialized logging; stdout belongs to the UI.
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogAPIRequest logs an outbound admin API request.
// A nil logger means the global one.
func LogAPIRequest(l *zap.Logger, requestID, method, url string, bodyLen int) {
	orGlobal(l).Debug("API request sent",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("body_length", bodyLen),
	)
}

// LogAPIResponse logs the outcome of an admin API request.
// Non-2xx responses are logged at warn.
func LogAPIResponse(l *zap.Logger, requestID, method, url string, statusCode int, elapsed time.Duration) {
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("elapsed", elapsed),
	}

	if statusCode >= 200 && statusCode < 300 {
		orGlobal(l).Debug("API response received", fields...)
		return
	}
	orGlobal(l).Warn("API response received", fields...)
}

func orGlobal(l *zap.Logger) *zap.Logger {
	if l == nil {
		return GetLogger()
	}
	return l
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
