// Package logger provides the structured logger used across newsdesk.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface passed to every component.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is a key-value pair attached to a log entry.
type Field = zap.Field

type Config struct {
	Level string `yaml:"level"`
	// Output is "stdout", "stderr" or a file path.
	Output      string `yaml:"output"`
	Development bool   `yaml:"development"`
}

type zapLogger struct {
	logger *zap.Logger
}

// New builds a JSON zap logger. File outputs get their parent directory
// created first.
func New(cfg Config) (Logger, error) {
	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	if output != "stdout" && output != "stderr" {
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zapCfg.OutputPaths = []string{output}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	if cfg.Development {
		zapCfg.Sampling = nil
	}

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &zapLogger{logger: z}, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.logger.Error(msg, fields...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(fields...)}
}

func (l *zapLogger) Sync() error { return l.logger.Sync() }

type nopLogger struct{}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...Field)  {}
func (nopLogger) Info(string, ...Field)   {}
func (nopLogger) Warn(string, ...Field)   {}
func (nopLogger) Error(string, ...Field)  {}
func (n nopLogger) With(...Field) Logger { return n }
func (nopLogger) Sync() error             { return nil }

var (
	String   = zap.String
	Int      = zap.Int
	Bool     = zap.Bool
	Duration = zap.Duration
	Strings  = zap.Strings
	Error    = zap.Error
)
