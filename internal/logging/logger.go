// Package logging builds the diagnostic logger used by the pairdist commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing warn and above to w.
// Records carry no timestamp so diagnostics stay stable between runs.
func New(w zapcore.WriteSyncer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(w), zapcore.WarnLevel)
	return zap.New(core)
}
