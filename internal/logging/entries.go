// pattern: Functional Core

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one structured log record as consumed by the workspace's log
// pane. It carries everything needed to render a line without re-parsing.
type Entry struct {
	Timestamp time.Time
	Level     string // DEBUG, INFO, WARN, ERROR
	Scope     string // named logger, e.g. "grid" or "workspace"
	Message   string
	Fields    map[string]any
}

// String renders the entry as a single display line. Fields are sorted so
// the same entry always renders the same way.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("15:04:05"))
	sb.WriteString(" ")
	sb.WriteString(e.Level)
	sb.WriteString(" [")
	sb.WriteString(e.Scope)
	sb.WriteString("] ")
	sb.WriteString(e.Message)

	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%v", k, e.Fields[k])
		}
	}

	return sb.String()
}

// NormalizeLevel maps a zap level string to its display form. Unknown
// levels display as INFO.
func NormalizeLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "DEBUG"
	case "warn", "warning":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}
