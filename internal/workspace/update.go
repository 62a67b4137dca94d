// pattern: Imperative Shell

package workspace

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panegrid/internal/config"
	"panegrid/internal/grid"
	"panegrid/internal/logging"
)

// statusLinger is how long an action message stays in the status bar.
const statusLinger = 3 * time.Second

type tickMsg struct {
	time time.Time
}

// logEntriesMsg delivers a batch from the logging channel.
type logEntriesMsg struct {
	entries []logging.Entry
}

type clearStatusMsg struct{}

// ConfigReloadedMsg is sent by the config watcher when the file changes.
type ConfigReloadedMsg struct {
	Config config.Config
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.invalidateRegions()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		for _, content := range m.contents {
			content.Update(msg)
		}
		return m, m.tick()

	case logEntriesMsg:
		for _, content := range m.contents {
			if lc, ok := content.(*logContent); ok {
				lc.Append(msg.entries)
			}
		}
		return m, readEntries(m.entries)

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.styles = NewStyles(m.cfg.Theme)
		m.translator.SetSpacing(float64(m.cfg.Spacing))
		m.invalidateRegions()
		m.logger.Info("config reloaded", "theme", m.cfg.Theme, "spacing", m.cfg.Spacing)
		return m, m.setStatus("config reloaded")

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	// The grid intercepts everything else while a pane drag is live.
	if !m.translator.ShouldForward() {
		return m, nil
	}

	switch msg.String() {
	case "s":
		return m.splitFocused(grid.Horizontal)
	case "v":
		return m.splitFocused(grid.Vertical)
	case "x":
		return m.closeFocused()
	case "tab":
		m.cycleFocus()
		return m, nil
	}

	// Everything unconsumed goes to the focused pane's content.
	if pane, ok := m.focusedPane(); ok {
		if content, exists := m.contents[pane]; exists {
			return m, content.Update(msg)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.translator.SetModifier(msg.Alt)

	pos := grid.Point{X: float64(msg.X), Y: float64(msg.Y - 1)} // below the title row

	if ev, ok := pointerEvent(msg, pos); ok {
		m.cachedRegions() // hit-testing must see current-geometry regions
		events := m.translator.HandlePointer(ev, m.gridSize())
		return m.applyEvents(events, msg)
	}

	// Wheel and friends: forward to the pane under the cursor.
	if m.translator.ShouldForward() {
		if pane, ok := m.translator.PaneAt(pos, m.gridSize()); ok {
			if content, exists := m.contents[pane]; exists {
				return m, content.Update(msg)
			}
		}
	}
	return m, nil
}

// pointerEvent maps a bubbletea mouse message onto an engine pointer
// event. Wheel buttons are not pointer events for the grid.
func pointerEvent(msg tea.MouseMsg, pos grid.Point) (grid.PointerEvent, bool) {
	switch msg.Action {
	case tea.MouseActionMotion:
		return grid.PointerEvent{Action: grid.ActionMove, Pos: pos}, true
	case tea.MouseActionPress, tea.MouseActionRelease:
		var button grid.PointerButton
		switch msg.Button {
		case tea.MouseButtonLeft:
			button = grid.ButtonPrimary
		case tea.MouseButtonRight:
			button = grid.ButtonSecondary
		default:
			return grid.PointerEvent{}, false
		}
		action := grid.ActionPress
		if msg.Action == tea.MouseActionRelease {
			action = grid.ActionRelease
		}
		return grid.PointerEvent{Action: action, Button: button, Pos: pos}, true
	}
	return grid.PointerEvent{}, false
}

// applyEvents commits engine events to the tree and surfaces them in the
// status bar.
func (m Model) applyEvents(events []grid.Event, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, ev := range events {
		switch e := ev.(type) {
		case grid.Picked:
			m.logger.Debug("pane picked", "pane", int(e.Pane))
			cmds = append(cmds, m.setStatus(fmt.Sprintf("dragging pane %d", e.Pane)))

		case grid.Dropped:
			if err := m.tree.Swap(e.Pane, e.Target); err != nil {
				m.logger.Error("swap failed", "error", err)
				break
			}
			m.invalidateRegions()
			m.logger.Info("panes swapped", "pane", int(e.Pane), "target", int(e.Target))
			cmds = append(cmds, m.setStatus(fmt.Sprintf("swapped panes %d and %d", e.Pane, e.Target)))

		case grid.Canceled:
			m.logger.Debug("drag canceled", "pane", int(e.Pane))
			cmds = append(cmds, m.setStatus("drag canceled"))

		case grid.ResizeRequested:
			m.tree.Resize(e.Split, e.Ratio)
			m.invalidateRegions()
		}
	}

	// Hover tracking: motion highlights the pane under the cursor unless a
	// click already focused one.
	if msg.Action == tea.MouseActionMotion && m.translator.ShouldForward() {
		if _, _, resizing := m.translator.State().PickedSplit(); !resizing {
			m.hoverAt(grid.Point{X: float64(msg.X), Y: float64(msg.Y - 1)})
		}
	}

	return m, tea.Batch(cmds...)
}

// hoverAt applies pointer highlight without clobbering click focus.
func (m *Model) hoverAt(pos grid.Point) {
	target, focused := m.translator.State().Focused()
	if focused && target.Kind == grid.Focused {
		return
	}
	if pane, ok := m.translator.PaneAt(pos, m.gridSize()); ok {
		m.translator.State().Hover(pane)
	}
}

func (m Model) splitFocused(axis grid.Axis) (tea.Model, tea.Cmd) {
	pane, ok := m.focusedPane()
	if !ok {
		return m, nil
	}

	newPane, split, err := m.tree.Split(pane, axis)
	if err != nil {
		m.logger.Error("split failed", "pane", int(pane), "error", err)
		return m, m.setStatus("split failed")
	}

	m.contents[newPane] = m.newContent()
	m.translator.State().Focus(newPane)
	m.invalidateRegions()
	m.logger.Info("pane split", "pane", int(pane), "new_pane", int(newPane),
		"split", int(split), "axis", axis.String())
	return m, m.setStatus(fmt.Sprintf("split pane %d (%s)", pane, axis))
}

func (m Model) closeFocused() (tea.Model, tea.Cmd) {
	pane, ok := m.focusedPane()
	if !ok {
		return m, nil
	}

	sibling, siblingIsLeaf, err := m.tree.Remove(pane)
	if err != nil {
		m.logger.Error("close failed", "pane", int(pane), "error", err)
		return m, nil
	}
	if m.tree.Contains(pane) {
		// Sole remaining pane: removal is a no-op.
		return m, m.setStatus("cannot close the last pane")
	}

	m.translator.State().Invalidate(pane)
	delete(m.contents, pane)
	if siblingIsLeaf {
		m.translator.State().Focus(sibling)
	}
	m.invalidateRegions()
	m.logger.Info("pane closed", "pane", int(pane))
	return m, m.setStatus(fmt.Sprintf("closed pane %d", pane))
}

// cycleFocus moves focus to the next pane in traversal order.
func (m *Model) cycleFocus() {
	panes := m.tree.Panes()
	if len(panes) == 0 {
		return
	}

	current, ok := m.focusedPane()
	if !ok {
		m.translator.State().Focus(panes[0])
		return
	}

	for i, pane := range panes {
		if pane == current {
			m.translator.State().Focus(panes[(i+1)%len(panes)])
			return
		}
	}
	m.translator.State().Focus(panes[0])
}

// setStatus puts a message in the status bar and schedules its expiry.
func (m *Model) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusLinger, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// readEntries blocks on one log entry, then drains whatever else is
// already buffered so the pane updates in batches.
func readEntries(ch <-chan logging.Entry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		first, ok := <-ch
		if !ok {
			return nil
		}
		entries := []logging.Entry{first}
		for {
			select {
			case e, ok := <-ch:
				if !ok {
					return logEntriesMsg{entries: entries}
				}
				entries = append(entries, e)
			default:
				return logEntriesMsg{entries: entries}
			}
		}
	}
}
