package workspace

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"panegrid/internal/logging"
)

// Content is the contract pane content satisfies: arrange within the
// assigned region, consume events forwarded by the grid, and render.
type Content interface {
	Title() string
	Arrange(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// maxLogLines bounds the log pane's backing buffer.
const maxLogLines = 500

// logContent renders the logging channel inside a scrollable viewport.
type logContent struct {
	viewport viewport.Model
	lines    []string
	ready    bool
}

func newLogContent() *logContent {
	return &logContent{}
}

func (c *logContent) Title() string { return "log" }

func (c *logContent) Arrange(width, height int) {
	if !c.ready {
		c.viewport = viewport.New(width, height)
		c.ready = true
	} else {
		c.viewport.Width = width
		c.viewport.Height = height
	}
	c.refresh()
}

func (c *logContent) Update(msg tea.Msg) tea.Cmd {
	if !c.ready {
		return nil
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

func (c *logContent) View() string {
	if !c.ready {
		return ""
	}
	return c.viewport.View()
}

// Append adds entries to the buffer, trimming the oldest past the cap.
func (c *logContent) Append(entries []logging.Entry) {
	for _, e := range entries {
		c.lines = append(c.lines, e.String())
	}
	if len(c.lines) > maxLogLines {
		c.lines = c.lines[len(c.lines)-maxLogLines:]
	}
	c.refresh()
}

func (c *logContent) refresh() {
	if !c.ready {
		return
	}
	atBottom := c.viewport.AtBottom()
	c.viewport.SetContent(strings.Join(c.lines, "\n"))
	if atBottom {
		c.viewport.GotoBottom()
	}
}

// clockContent shows the current time, advanced by the workspace tick.
type clockContent struct {
	now    time.Time
	width  int
	height int
}

func newClockContent() *clockContent {
	return &clockContent{now: time.Now()}
}

func (c *clockContent) Title() string { return "clock" }

func (c *clockContent) Arrange(width, height int) {
	c.width = width
	c.height = height
}

func (c *clockContent) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(tickMsg); ok {
		c.now = tick.time
	}
	return nil
}

func (c *clockContent) View() string {
	return c.now.Format("15:04:05\nMon Jan 2 2006")
}

// counterContent is a minimal interactive pane: +/- adjust the count.
// It exists to show event forwarding reaching pane content.
type counterContent struct {
	count int
}

func newCounterContent() *counterContent {
	return &counterContent{}
}

func (c *counterContent) Title() string { return "counter" }

func (c *counterContent) Arrange(width, height int) {}

func (c *counterContent) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "+", "=":
		c.count++
	case "-":
		c.count--
	}
	return nil
}

func (c *counterContent) View() string {
	return fmt.Sprintf("count: %d\n\n+/- to change", c.count)
}

// helpContent lists the workspace key and mouse bindings.
type helpContent struct{}

func newHelpContent() *helpContent {
	return &helpContent{}
}

func (c *helpContent) Title() string { return "help" }

func (c *helpContent) Arrange(width, height int) {}

func (c *helpContent) Update(msg tea.Msg) tea.Cmd { return nil }

func (c *helpContent) View() string {
	return strings.Join([]string{
		"s  split focused pane (side by side)",
		"v  split focused pane (stacked)",
		"x  close focused pane",
		"tab  cycle focus",
		"q  quit",
		"",
		"click        focus pane",
		"alt+drag     move pane onto another",
		"alt+rdrag    resize nearest split",
	}, "\n")
}

// contentFactories is the rotation used when a split creates a new pane.
var contentFactories = []func() Content{
	func() Content { return newClockContent() },
	func() Content { return newCounterContent() },
	func() Content { return newHelpContent() },
}
