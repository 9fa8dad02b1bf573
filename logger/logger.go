package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"stocktracker/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a zap.Logger configured based on the given options.
// Console output goes to stderr; stdout belongs to the tracker itself.
func New(opts config.LogConfig) (*zap.Logger, error) {
	return newWithSink(opts, zapcore.Lock(os.Stderr))
}

func newWithSink(opts config.LogConfig, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cores := []zapcore.Core{consoleCore(opts, sink, lvl)}

	if opts.OutputFile != "" {
		fc, err := fileCore(opts.OutputFile, lvl)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fc)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// consoleCore is human readable in dev or when asked for, JSON otherwise.
func consoleCore(opts config.LogConfig, sink zapcore.WriteSyncer, lvl zapcore.Level) zapcore.Core {
	if opts.Environment == "dev" || opts.Format == "console" {
		return zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), sink, lvl)
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, lvl)
}

// fileCore writes JSON lines to path, rotated by lumberjack.
func fileCore(path string, lvl zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     7, // days
		Compress:   true,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(rotator), lvl), nil
}
