package workspace

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"panegrid/internal/grid"
	"panegrid/internal/logging"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sendKey(t *testing.T, m Model, s string) Model {
	t.Helper()
	updated, _ := m.Update(keyMsg(s))
	return updated.(Model)
}

func sendMouse(t *testing.T, m Model, msg tea.MouseMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(x, y int, button tea.MouseButton, alt bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button, Alt: alt}
}

func release(x, y int, button tea.MouseButton, alt bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: button, Alt: alt}
}

func motion(x, y int, alt bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Alt: alt}
}

func TestSplitKeys(t *testing.T) {
	m := newTestModel(t, 80, 24)
	before, _ := m.focusedPane()

	m = sendKey(t, m, "s")
	if got := m.tree.Len(); got != 2 {
		t.Fatalf("after s: Len() = %d, want 2", got)
	}
	if len(m.contents) != 2 {
		t.Fatalf("after s: contents has %d entries, want 2", len(m.contents))
	}

	focused, ok := m.focusedPane()
	if !ok {
		t.Fatal("no focused pane after split")
	}
	if focused == before {
		t.Error("focus did not move to the new pane")
	}

	m = sendKey(t, m, "v")
	if got := m.tree.Len(); got != 3 {
		t.Errorf("after v: Len() = %d, want 3", got)
	}
}

func TestCloseKey(t *testing.T) {
	m := newTestModel(t, 80, 24)
	first, _ := m.focusedPane()

	m = sendKey(t, m, "s")
	closed, _ := m.focusedPane()

	m = sendKey(t, m, "x")
	if got := m.tree.Len(); got != 1 {
		t.Fatalf("after x: Len() = %d, want 1", got)
	}
	if m.tree.Contains(closed) {
		t.Error("closed pane still present")
	}
	if _, ok := m.contents[closed]; ok {
		t.Error("closed pane's content not dropped")
	}

	// Focus falls back to the promoted sibling.
	focused, ok := m.focusedPane()
	if !ok {
		t.Fatal("no focused pane after close")
	}
	if focused != first {
		t.Errorf("focus on pane %d, want sibling %d", focused, first)
	}
}

func TestCloseLastPaneRefused(t *testing.T) {
	m := newTestModel(t, 80, 24)

	m = sendKey(t, m, "x")
	if got := m.tree.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	if m.status != "cannot close the last pane" {
		t.Errorf("status = %q", m.status)
	}
	if len(m.contents) != 1 {
		t.Errorf("contents has %d entries, want 1", len(m.contents))
	}
}

func TestCycleFocus(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s") // focus is on the new pane, last in traversal order

	panes := m.tree.Panes()
	m = sendKey(t, m, "tab")

	focused, _ := m.focusedPane()
	if focused != panes[0] {
		t.Errorf("focus on pane %d, want %d", focused, panes[0])
	}

	m = sendKey(t, m, "tab")
	focused, _ = m.focusedPane()
	if focused != panes[1] {
		t.Errorf("focus on pane %d after wrap, want %d", focused, panes[1])
	}
}

func TestClickFocusesPane(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")
	panes := m.tree.Panes()

	// Right half of the grid; Y is shifted one row for the title bar.
	m = sendMouse(t, m, press(60, 11, tea.MouseButtonLeft, false))

	target, ok := m.translator.State().Focused()
	if !ok {
		t.Fatal("no focus after click")
	}
	if target.Pane != panes[1] || target.Kind != grid.Focused {
		t.Errorf("focus = %+v, want pane %d focused", target, panes[1])
	}
}

func TestClickOutsideUnfocuses(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")

	// The spacing column between the two panes belongs to no region.
	m = sendMouse(t, m, press(40, 11, tea.MouseButtonLeft, false))

	if _, ok := m.translator.State().Focused(); ok {
		t.Error("focus survived a click on the spacing gap")
	}
}

func TestAltDragSwapsPanes(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")
	before := m.tree.Panes()

	m = sendMouse(t, m, press(10, 11, tea.MouseButtonLeft, true))
	if _, picked := m.translator.State().PickedPane(); !picked {
		t.Fatal("alt+press did not pick the pane")
	}
	if m.translator.ShouldForward() {
		t.Error("events forwarded to content during a drag")
	}

	m = sendMouse(t, m, motion(40, 11, true))
	m = sendMouse(t, m, release(60, 11, tea.MouseButtonLeft, true))

	after := m.tree.Panes()
	if after[0] != before[1] || after[1] != before[0] {
		t.Errorf("Panes() = %v after drop, want swapped %v", after, before)
	}
	if _, picked := m.translator.State().PickedPane(); picked {
		t.Error("pane still picked after release")
	}
}

func TestAltDragOntoSelfCancels(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")
	before := m.tree.Panes()

	m = sendMouse(t, m, press(10, 11, tea.MouseButtonLeft, true))
	m = sendMouse(t, m, release(12, 11, tea.MouseButtonLeft, true))

	after := m.tree.Panes()
	if after[0] != before[0] || after[1] != before[1] {
		t.Errorf("Panes() = %v after canceled drag, want unchanged %v", after, before)
	}
	if m.status != "drag canceled" {
		t.Errorf("status = %q", m.status)
	}
}

func TestAltRightDragResizesSplit(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")

	m = sendMouse(t, m, press(60, 11, tea.MouseButtonRight, true))
	if got := m.tree.Branches()[0].Ratio; got != 0.75 {
		t.Fatalf("ratio = %v after grab at x=60, want 0.75", got)
	}

	m = sendMouse(t, m, motion(20, 11, true))
	if got := m.tree.Branches()[0].Ratio; got != 0.25 {
		t.Errorf("ratio = %v after move to x=20, want 0.25", got)
	}

	m = sendMouse(t, m, release(20, 11, tea.MouseButtonRight, true))
	if _, _, resizing := m.translator.State().PickedSplit(); resizing {
		t.Error("split still picked after release")
	}

	// Motion after release must not resize.
	m = sendMouse(t, m, motion(70, 11, true))
	if got := m.tree.Branches()[0].Ratio; got != 0.25 {
		t.Errorf("ratio = %v after idle motion, want 0.25", got)
	}
}

func TestRightPressWithoutModifierIgnored(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")

	m = sendMouse(t, m, press(60, 11, tea.MouseButtonRight, false))
	if _, _, resizing := m.translator.State().PickedSplit(); resizing {
		t.Error("split picked without the modifier")
	}
	if got := m.tree.Branches()[0].Ratio; got != 0.5 {
		t.Errorf("ratio = %v, want untouched 0.5", got)
	}
}

func TestMotionHoversPane(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s")
	panes := m.tree.Panes()

	m.translator.State().Unfocus()
	m = sendMouse(t, m, motion(10, 11, false))

	target, ok := m.translator.State().Focused()
	if !ok {
		t.Fatal("no highlight after motion")
	}
	if target.Pane != panes[0] || target.Kind != grid.Hovered {
		t.Errorf("highlight = %+v, want pane %d hovered", target, panes[0])
	}

	// A click focus is not downgraded by later motion.
	m.translator.State().Focus(panes[1])
	m = sendMouse(t, m, motion(10, 11, false))
	target, _ = m.translator.State().Focused()
	if target.Pane != panes[1] || target.Kind != grid.Focused {
		t.Errorf("focus = %+v after motion, want pane %d still focused", target, panes[1])
	}
}

func TestKeysForwardToFocusedContent(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = sendKey(t, m, "s") // new pane gets the first rotation kind: clock
	m = sendKey(t, m, "s") // next: counter

	pane, _ := m.focusedPane()
	counter, ok := m.contents[pane].(*counterContent)
	if !ok {
		t.Fatalf("focused content is %T, want *counterContent", m.contents[pane])
	}

	m = sendKey(t, m, "+")
	m = sendKey(t, m, "+")
	m = sendKey(t, m, "-")
	if counter.count != 1 {
		t.Errorf("count = %d, want 1", counter.count)
	}
}

func TestLogEntriesReachLogPane(t *testing.T) {
	m := newTestModel(t, 80, 24)

	pane := m.tree.Panes()[0]
	lc := m.contents[pane].(*logContent)

	entries := []logging.Entry{
		{Level: "info", Scope: "workspace", Message: "hello"},
		{Level: "debug", Scope: "workspace", Message: "world"},
	}
	updated, _ := m.Update(logEntriesMsg{entries: entries})
	m = updated.(Model)

	if len(lc.lines) != 2 {
		t.Errorf("log pane holds %d lines, want 2", len(lc.lines))
	}
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(t, 80, 24)

	cfg := m.cfg
	cfg.Theme = "latte"
	cfg.Spacing = 2

	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = updated.(Model)

	if m.cfg.Theme != "latte" || m.cfg.Spacing != 2 {
		t.Errorf("cfg = %+v, want latte/2", m.cfg)
	}
	if m.status != "config reloaded" {
		t.Errorf("status = %q", m.status)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, 80, 24)

	for _, key := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %q produced no command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q did not quit", key.String())
		}
	}
}
