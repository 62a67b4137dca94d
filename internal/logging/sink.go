// pattern: Imperative Shell

package logging

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// ChannelSink is a zapcore.WriteSyncer that parses encoded entries and
// delivers them on a channel for the log pane. Writes never block: when
// the buffer is full the oldest entry is dropped in favor of the new one.
type ChannelSink struct {
	entries chan Entry
	mu      sync.Mutex
	closed  bool
}

// NewChannelSink creates a sink with the given buffer size.
func NewChannelSink(bufferSize int) *ChannelSink {
	return &ChannelSink{entries: make(chan Entry, bufferSize)}
}

// Write implements io.Writer over zap's JSON output.
func (s *ChannelSink) Write(p []byte) (int, error) {
	entry, err := decodeEntry(p)
	if err != nil {
		// Unparseable output must not stall the logger.
		return len(p), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("write to closed channel sink")
	}

	select {
	case s.entries <- entry:
	default:
		select {
		case <-s.entries:
		default:
		}
		select {
		case s.entries <- entry:
		default:
		}
	}

	return len(p), nil
}

// Sync implements zapcore.WriteSyncer.
func (s *ChannelSink) Sync() error {
	return nil
}

// Close closes the entries channel. Safe to call more than once.
func (s *ChannelSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.entries)
	}
	return nil
}

// Entries returns the consumption side of the sink.
func (s *ChannelSink) Entries() <-chan Entry {
	return s.entries
}

// decodeEntry turns one zap JSON line into an Entry.
func decodeEntry(data []byte) (Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Scope:     "app",
		Fields:    make(map[string]any),
	}

	if msg, ok := raw["msg"].(string); ok {
		entry.Message = msg
		delete(raw, "msg")
	}
	if level, ok := raw["level"].(string); ok {
		entry.Level = NormalizeLevel(level)
		delete(raw, "level")
	}
	if scope, ok := raw["logger"].(string); ok {
		entry.Scope = scope
		delete(raw, "logger")
	}
	if ts, ok := raw["ts"].(float64); ok {
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * 1e9)
		entry.Timestamp = time.Unix(sec, nsec)
		delete(raw, "ts")
	}

	delete(raw, "caller")
	delete(raw, "stacktrace")

	for k, v := range raw {
		entry.Fields[k] = v
	}

	return entry, nil
}
