package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	unknownLogLevelTemplateConstant  = "unknown log level %q (expected debug, info, warn, or error)"
	unknownLogFormatTemplateConstant = "unknown log format %q (expected structured or console)"
)

// LogLevel names a logging granularity accepted in configuration.
type LogLevel string

// Log levels accepted by CreateLogger, from most to least verbose.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat names a logger output encoding accepted in configuration.
type LogFormat string

// Log formats accepted by CreateLogger: structured emits JSON for log
// collectors, console emits human-readable lines for terminal runs.
const (
	LogFormatStructured LogFormat = "structured"
	LogFormatConsole    LogFormat = "console"
)

// LoggerFactory builds the zap diagnostic logger shared by every sitesync
// command. Level and format values are matched case-insensitively so
// configuration files and environment overrides need not agree on casing.
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLevel, levelError := resolveLogLevel(requestedLogLevel)
	if levelError != nil {
		return nil, levelError
	}

	configuration, formatError := baseConfigurationForFormat(requestedLogFormat)
	if formatError != nil {
		return nil, formatError
	}
	configuration.Level = zap.NewAtomicLevelAt(zapLevel)

	return configuration.Build()
}

// resolveLogLevel maps a configured level name onto its zap equivalent.
func resolveLogLevel(requestedLogLevel LogLevel) (zapcore.Level, error) {
	switch LogLevel(strings.ToLower(strings.TrimSpace(string(requestedLogLevel)))) {
	case LogLevelDebug:
		return zapcore.DebugLevel, nil
	case LogLevelInfo:
		return zapcore.InfoLevel, nil
	case LogLevelWarn:
		return zapcore.WarnLevel, nil
	case LogLevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf(unknownLogLevelTemplateConstant, requestedLogLevel)
	}
}

// baseConfigurationForFormat returns the zap configuration skeleton for the
// requested encoding. The console profile drops stack traces and uses
// readable timestamps; the structured profile keeps zap's production JSON.
func baseConfigurationForFormat(requestedLogFormat LogFormat) (zap.Config, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(string(requestedLogFormat)))) {
	case LogFormatStructured:
		return zap.NewProductionConfig(), nil
	case LogFormatConsole:
		configuration := zap.NewProductionConfig()
		configuration.Encoding = "console"
		configuration.DisableStacktrace = true
		configuration.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		configuration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return configuration, nil
	default:
		return zap.Config{}, fmt.Errorf(unknownLogFormatTemplateConstant, requestedLogFormat)
	}
}
