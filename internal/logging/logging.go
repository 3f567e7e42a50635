// Package logging builds the zap loggers of the command line tool.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. Verbose enables debug
// output with caller information; otherwise only info and above is shown.
func New(verbose bool) *zap.SugaredLogger {
	return NewTo(os.Stderr, verbose)
}

// NewTo is New writing to w.
func NewTo(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zap.InfoLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var opts []zap.Option
	if verbose {
		level = zap.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core, opts...).Sugar()
}
