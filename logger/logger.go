// Package logger holds the loggers shared by the layout packages,
// and the diagnostics sink used to report non fatal layout problems.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProgressLogger logs the main steps of the layout.
var ProgressLogger = zap.NewNop().Sugar()

// WarningLogger emits a warning for each non fatal error, like unsupported CSS
// properties or inconsistent box trees.
var WarningLogger = zap.NewNop().Sugar()

// Init replaces the package loggers by a zap logger writing to stderr.
// [level] is a zap level name ("debug", "info", "warn"...), [format] is
// "console" or "json".
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "console", "":
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(lvl))
	log := zap.New(core)
	ProgressLogger = log.Named("progress").Sugar()
	WarningLogger = log.Named("warning").Sugar()
	return nil
}
