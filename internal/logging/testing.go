package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NopLogger returns a logger that discards everything. Use where logging
// is not configured.
func NopLogger() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// TestManager is a Provider that writes to a channel only, for tests that
// assert on emitted entries without touching the filesystem.
type TestManager struct {
	sink    *ChannelSink
	base    *zap.Logger
	loggers map[string]*Logger
	mu      sync.Mutex
}

// NewTestManager creates a channel-only manager logging at DEBUG.
func NewTestManager(bufferSize int) *TestManager {
	sink := NewChannelSink(bufferSize)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.EpochTimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(sink),
		zapcore.DebugLevel,
	)

	return &TestManager{
		sink:    sink,
		base:    zap.New(core),
		loggers: make(map[string]*Logger),
	}
}

// For returns the logger for a scope, mirroring the production Manager.
func (m *TestManager) For(scope string) *Logger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if logger, ok := m.loggers[scope]; ok {
		return logger
	}

	logger := &Logger{sugar: m.base.Named(scope).Sugar(), scope: scope}
	m.loggers[scope] = logger
	return logger
}

// Entries returns the channel receiving emitted entries.
func (m *TestManager) Entries() <-chan Entry {
	return m.sink.Entries()
}

// Close flushes and closes the sink.
func (m *TestManager) Close() error {
	_ = m.base.Sync()
	return m.sink.Close()
}
