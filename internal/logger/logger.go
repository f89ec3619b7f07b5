// Package logger provides the default zap-backed implementation of
// contracts.Logger.
package logger

import (
	"go.uber.org/zap"

	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

type zapLogger struct {
	l *zap.Logger
}

// New returns a production zap logger behind the contracts.Logger
// interface. With debug set it uses the development config, which enables
// the debug level and human-readable output.
func New(debug bool) contracts.Logger {
	var l *zap.Logger
	var err error
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		l = zap.NewNop()
	}
	return &zapLogger{l: l}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() contracts.Logger {
	return &zapLogger{l: zap.NewNop()}
}

// Wrap adapts an existing zap logger to the contracts.Logger interface.
func Wrap(l *zap.Logger) contracts.Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Debug(msg string, fields ...contracts.Field) {
	z.l.Debug(msg, zapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...contracts.Field) {
	z.l.Info(msg, zapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...contracts.Field) {
	z.l.Warn(msg, zapFields(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...contracts.Field) {
	z.l.Error(msg, zapFields(fields)...)
}

func zapFields(fields []contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case error:
			zf[i] = zap.NamedError(f.Key, v)
		default:
			zf[i] = zap.Any(f.Key, f.Value)
		}
	}
	return zf
}
