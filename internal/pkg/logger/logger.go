// Package logger implements ports.Logger on top of zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes structured log output through zap.
type ZapLogger struct {
	l *zap.Logger
}

// New builds a logger. Verbose enables the development encoder at debug
// level; otherwise only warnings and errors reach stderr.
func New(verbose bool) *ZapLogger {
	var zl *zap.Logger
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		zl, _ = cfg.Build()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		zl, _ = cfg.Build()
	}
	if zl == nil {
		zl = zap.NewNop()
	}
	return &ZapLogger{l: zl}
}

// NewNop returns a logger that discards everything; used in tests.
func NewNop() *ZapLogger {
	return &ZapLogger{l: zap.NewNop()}
}

func (z *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	z.l.Debug(msg, toFields(fields)...)
}

func (z *ZapLogger) Info(msg string, fields map[string]interface{}) {
	z.l.Info(msg, toFields(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	z.l.Warn(msg, toFields(fields)...)
}

func (z *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	z.l.Error(msg, append(toFields(fields), zap.Error(err))...)
}

func toFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	return out
}
