// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

// Init builds the process logger for env. "production" logs JSON at info
// level; anything else logs colored console output at debug level. Calling
// Init again replaces the previous logger.
func Init(env string) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	Replace(base)
}

// Replace swaps the process logger. Tests use it to silence output with
// zap.NewNop() or to capture entries with zaptest/observer.
func Replace(l *zap.Logger) {
	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

// Get returns the process logger, initializing a development logger on
// first use.
func Get() *zap.SugaredLogger {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s != nil {
		return s
	}
	Init("development")
	return Get()
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if sugar != nil {
		_ = sugar.Sync()
	}
}
