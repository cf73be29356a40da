// Package logging builds the zap logger. Output always goes to a rotating
// file because the TUI owns the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Path    string // log file; empty disables logging
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug
}

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// New returns a JSON logger writing to a lumberjack-rotated file. The returned
// func flushes and closes the file.
func New(opts Options) (*zap.Logger, func(), error) {
	if strings.TrimSpace(opts.Path) == "" {
		return zap.NewNop(), func() {}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)

	logger := zap.New(core).Named("vuecrm")
	closeFn := func() {
		_ = logger.Sync()
		_ = rotator.Close()
	}
	return logger, closeFn, nil
}

// ParseLevel maps a config string to a zap level. Empty means info.
func ParseLevel(value string) (zapcore.Level, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
