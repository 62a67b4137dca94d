// pattern: Imperative Shell

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds configuration for the Manager.
type Config struct {
	FilePath       string // path to the rotating log file
	MaxSizeMB      int    // size before rotation
	MaxBackups     int    // old files to keep
	MaxAgeDays     int    // days to keep old files
	Level          string // minimum level (debug, info, warn, error)
	ChannelBufSize int    // buffer for the log-pane channel
}

// Logger is a leveled, scoped logger handed out by the Manager.
type Logger struct {
	sugar *zap.SugaredLogger
	scope string
}

// Info logs at INFO level with alternating key/value context.
func (l *Logger) Info(msg string, kv ...any) { l.sugar.Infow(msg, kv...) }

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string, kv ...any) { l.sugar.Debugw(msg, kv...) }

// Warn logs at WARN level.
func (l *Logger) Warn(msg string, kv ...any) { l.sugar.Warnw(msg, kv...) }

// Error logs at ERROR level.
func (l *Logger) Error(msg string, kv ...any) { l.sugar.Errorw(msg, kv...) }

// With returns a Logger carrying the given key/value pairs on every entry.
func (l *Logger) With(kv ...any) *Logger {
	return &Logger{sugar: l.sugar.With(kv...), scope: l.scope}
}

// Scope returns the logger's scope name.
func (l *Logger) Scope() string { return l.scope }

// Provider hands out scoped loggers. Manager and TestManager implement it.
type Provider interface {
	For(scope string) *Logger
}

// Manager owns the zap core with dual output: a rotating JSON file and a
// channel sink rendered by the workspace's log pane.
type Manager struct {
	base       *zap.Logger
	sink       *ChannelSink
	fileWriter *lumberjack.Logger
	loggers    map[string]*Logger
	mu         sync.Mutex
}

// NewManager creates a manager with the given configuration.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("FilePath is required")
	}
	if cfg.ChannelBufSize == 0 {
		cfg.ChannelBufSize = 1000
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	sink := NewChannelSink(cfg.ChannelBufSize)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.EpochTimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(fileWriter), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(sink), level),
	)

	return &Manager{
		base:       zap.New(core),
		sink:       sink,
		fileWriter: fileWriter,
		loggers:    make(map[string]*Logger),
	}, nil
}

// For returns the logger for a scope, creating and caching it on first use.
func (m *Manager) For(scope string) *Logger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if logger, ok := m.loggers[scope]; ok {
		return logger
	}

	logger := &Logger{sugar: m.base.Named(scope).Sugar(), scope: scope}
	m.loggers[scope] = logger
	return logger
}

// Entries returns the channel the log pane consumes.
func (m *Manager) Entries() <-chan Entry {
	return m.sink.Entries()
}

// Sync flushes buffered output.
func (m *Manager) Sync() error {
	return m.base.Sync()
}

// Close syncs and releases the file writer and channel sink.
func (m *Manager) Close() error {
	_ = m.Sync()
	_ = m.sink.Close()
	return m.fileWriter.Close()
}
