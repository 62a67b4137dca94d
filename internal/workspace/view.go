// pattern: Imperative Shell

package workspace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"panegrid/internal/grid"
)

// View renders the workspace: title row, pane canvas, status row.
func (m Model) View() string {
	if m.width <= 0 || m.height < 3 {
		return ""
	}

	title := m.styles.TitleStyle().Render(" panegrid")
	canvas := m.renderCanvas()
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, title, canvas, status)
}

// paneBox is one pane rendered and placed at cell coordinates.
type paneBox struct {
	x, y  int
	w, h  int
	lines []string
}

// renderCanvas composites every pane box into the grid area. The solver
// guarantees a non-overlapping tiling, so each output row is assembled
// left to right from the boxes that intersect it, with spacing gaps
// filled by blanks.
func (m Model) renderCanvas() string {
	size := m.gridSize()
	rows := int(size.Height)
	cols := int(size.Width)
	if rows <= 0 || cols <= 0 {
		return ""
	}

	regions := m.cachedRegions()

	boxes := make([]paneBox, 0, len(regions))
	for _, pane := range m.tree.Panes() {
		r, ok := regions[pane]
		if !ok {
			continue
		}
		x0, y0, x1, y1 := cellBounds(r)
		w, h := x1-x0, y1-y0
		if w < 2 || h < 2 {
			continue
		}
		boxes = append(boxes, paneBox{
			x: x0, y: y0, w: w, h: h,
			lines: strings.Split(m.renderPane(pane, w, h), "\n"),
		})
	}

	out := make([]string, rows)
	for y := 0; y < rows; y++ {
		row := make([]paneBox, 0, len(boxes))
		for _, b := range boxes {
			if y >= b.y && y < b.y+b.h {
				row = append(row, b)
			}
		}
		sort.Slice(row, func(i, j int) bool { return row[i].x < row[j].x })

		var sb strings.Builder
		cur := 0
		for _, b := range row {
			if b.x > cur {
				sb.WriteString(strings.Repeat(" ", b.x-cur))
				cur = b.x
			}
			line := ""
			if y-b.y < len(b.lines) {
				line = b.lines[y-b.y]
			}
			sb.WriteString(clipLine(line, b.w))
			cur += b.w
		}
		if cur < cols {
			sb.WriteString(strings.Repeat(" ", cols-cur))
		}
		out[y] = sb.String()
	}

	return strings.Join(out, "\n")
}

// renderPane draws one pane box: bordered, title line on top, content
// clipped to the interior.
func (m Model) renderPane(pane grid.Pane, w, h int) string {
	style := m.paneStyle(pane)

	innerW := w - 2
	innerH := h - 2

	var title string
	if content, ok := m.contents[pane]; ok {
		title = fmt.Sprintf("%s · %d", content.Title(), pane)
	} else {
		title = fmt.Sprintf("pane %d", pane)
	}
	lines := []string{m.styles.PaneTitleStyle().Render(clipLine(title, innerW))}

	if content, ok := m.contents[pane]; ok && innerH > 1 {
		body := strings.Split(content.View(), "\n")
		if len(body) > innerH-1 {
			body = body[:innerH-1]
		}
		for _, line := range body {
			lines = append(lines, clipLine(line, innerW))
		}
	}

	return style.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

// paneStyle picks the border treatment from the interaction state:
// dragged wins over focus, focus over hover.
func (m Model) paneStyle(pane grid.Pane) lipgloss.Style {
	if picked, ok := m.translator.State().PickedPane(); ok && picked == pane {
		return m.styles.DraggedPaneStyle()
	}
	if target, ok := m.translator.State().Focused(); ok && target.Pane == pane {
		if target.Kind == grid.Focused {
			return m.styles.FocusedPaneStyle()
		}
		return m.styles.HoveredPaneStyle()
	}
	return m.styles.PaneStyle()
}

// renderStatusBar shows the transient action message, or the standing
// hint, plus the resize indicator while a split is grabbed.
func (m Model) renderStatusBar() string {
	text := m.status
	if split, axis, ok := m.translator.State().PickedSplit(); ok {
		text = fmt.Sprintf("resizing split %d (%s)", split, axis)
	}
	if text == "" {
		text = "s/v split · x close · tab focus · q quit"
	}
	return m.styles.StatusStyle().Render(clipLine(" "+text, m.width))
}

// clipLine truncates a possibly styled line to width cells and pads it
// with spaces to exactly that width.
func clipLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	clipped := ansi.Truncate(line, width, "")
	if pad := width - ansi.StringWidth(clipped); pad > 0 {
		clipped += strings.Repeat(" ", pad)
	}
	return clipped
}
