package logging

import (
	"testing"
	"time"
)

func TestEntryString(t *testing.T) {
	entry := Entry{
		Timestamp: time.Date(2026, 3, 1, 9, 30, 15, 0, time.Local),
		Level:     "INFO",
		Scope:     "grid",
		Message:   "pane split",
		Fields:    map[string]any{"pane": 0, "axis": "horizontal"},
	}

	want := "09:30:15 INFO [grid] pane split axis=horizontal pane=0"
	if got := entry.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"fatal", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		if got := NormalizeLevel(tt.in); got != tt.want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChannelSinkDelivery(t *testing.T) {
	m := NewTestManager(10)
	defer m.Close()

	m.For("grid").Info("split created", "split", 2, "ratio", 0.5)

	select {
	case entry := <-m.Entries():
		if entry.Scope != "grid" {
			t.Errorf("Scope = %q, want %q", entry.Scope, "grid")
		}
		if entry.Message != "split created" {
			t.Errorf("Message = %q, want %q", entry.Message, "split created")
		}
		if entry.Level != "INFO" {
			t.Errorf("Level = %q, want INFO", entry.Level)
		}
		if got := entry.Fields["ratio"]; got != 0.5 {
			t.Errorf("Fields[ratio] = %v, want 0.5", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no entry delivered")
	}
}

func TestChannelSinkDropsOldestWhenFull(t *testing.T) {
	m := NewTestManager(2)
	defer m.Close()

	logger := m.For("workspace")
	logger.Info("first")
	logger.Info("second")
	logger.Info("third")

	var got []string
	for i := 0; i < 2; i++ {
		select {
		case entry := <-m.Entries():
			got = append(got, entry.Message)
		case <-time.After(time.Second):
			t.Fatal("expected two buffered entries")
		}
	}

	// The oldest entry was dropped to make room.
	want := []string{"second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoggerWith(t *testing.T) {
	m := NewTestManager(10)
	defer m.Close()

	m.For("grid").With("pane", 3).Info("focused")

	select {
	case entry := <-m.Entries():
		if got := entry.Fields["pane"]; got != float64(3) {
			t.Errorf("Fields[pane] = %v (%T), want 3", got, got)
		}
	case <-time.After(time.Second):
		t.Fatal("no entry delivered")
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	logger := NopLogger()
	logger.Debug("a")
	logger.Info("b", "k", 1)
	logger.Warn("c")
	logger.Error("d")
	logger.With("k", "v").Info("e")
}

func TestManagerForCachesLoggers(t *testing.T) {
	m := NewTestManager(1)
	defer m.Close()

	if m.For("grid") != m.For("grid") {
		t.Error("For() returned distinct loggers for the same scope")
	}
	if m.For("grid") == m.For("workspace") {
		t.Error("For() shared a logger across scopes")
	}
}
