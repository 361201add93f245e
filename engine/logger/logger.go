// Package logger is the engine-wide structured logger. It wraps a package-level zap sugared
// logger so call sites keep the Printf style of the standard library log package.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a logging priority.
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type logFormatFunc func(format string, args ...any)

var (
	// Debugf logs a formatted debug message.
	Debugf logFormatFunc
	// Infof logs a formatted info message.
	Infof logFormatFunc
	// Warnf logs a formatted warning message.
	Warnf logFormatFunc
	// Errorf logs a formatted error message.
	Errorf logFormatFunc

	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger *zap.Logger
)

func init() {
	cfg := zap.Config{
		Level:            level,
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			MessageKey:     "message",
			LevelKey:       "level",
			NameKey:        "source",
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	SetLogger(l)
}

// SetLogger replaces the underlying zap logger. Tests use it to capture output with an observer core.
//
// Parameters:
//   - l: the zap logger to route all package functions through
func SetLogger(l *zap.Logger) {
	logger = l
	sugar := l.Sugar()
	Debugf = sugar.Debugf
	Infof = sugar.Infof
	Warnf = sugar.Warnf
	Errorf = sugar.Errorf
}

// Logger returns the underlying zap logger.
//
// Returns:
//   - *zap.Logger: the current logger
func Logger() *zap.Logger {
	return logger
}

// SetSource tags every subsequent message with a source component name (e.g. "navigator").
//
// Parameters:
//   - source: the component name
func SetSource(source string) {
	SetLogger(logger.Named(source))
}

// SetLevel changes the minimum level logged by the default logger.
//
// Parameters:
//   - lv: the new minimum level
func SetLevel(lv Level) {
	level.SetLevel(lv)
}

// ParseLevel converts a level name to a Level. Unknown names fall back to InfoLevel.
//
// Parameters:
//   - s: a level name such as "debug", "info", "warn" or "error"
//
// Returns:
//   - Level: the parsed level
//   - bool: false if the name was not recognized
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, true
	case "info", "":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}
