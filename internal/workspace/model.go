package workspace

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panegrid/internal/config"
	"panegrid/internal/grid"
	"panegrid/internal/logging"
)

// Model is the workspace: a split tree of panes, the interaction
// translator over it, and the content hosted in each pane.
type Model struct {
	width  int
	height int

	cfg    config.Config
	styles *Styles

	logger  *logging.Logger
	entries <-chan logging.Entry

	tree       *grid.Tree
	translator *grid.Translator
	contents   map[grid.Pane]Content
	nextKind   int

	// Region cache, keyed by the tree's structural hash. Regions are
	// derived state: any mismatch forces a full recompute, and the map is
	// never reused across tree or container mutations.
	regions    map[grid.Pane]grid.Rectangle
	regionHash uint64
	regionsOK  bool

	status string
}

// NewModel creates a workspace with a single log pane.
func NewModel(cfg config.Config, logs logging.Provider, entries <-chan logging.Entry) Model {
	tree, first := grid.NewTree()

	translator := grid.NewTranslator(tree, float64(cfg.Spacing))
	translator.EnableDrag(true)
	translator.EnableResize(true)
	translator.State().Focus(first)

	return Model{
		cfg:        cfg,
		styles:     NewStyles(cfg.Theme),
		logger:     logs.For("workspace"),
		entries:    entries,
		tree:       tree,
		translator: translator,
		contents:   map[grid.Pane]Content{first: newLogContent()},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), readEntries(m.entries))
}

// tick drives the clock panes.
func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{time: t}
	})
}

// gridSize is the container handed to the engine: everything between the
// title row and the status row.
func (m Model) gridSize() grid.Size {
	h := m.height - 2
	if h < 0 {
		h = 0
	}
	return grid.Size{Width: float64(m.width), Height: float64(h)}
}

// cachedRegions returns the pane regions for the current tree and
// container, recomputing only when the structural hash changed.
func (m *Model) cachedRegions() map[grid.Pane]grid.Rectangle {
	hash := m.tree.Hash(m.gridSize())
	if m.regionsOK && hash == m.regionHash {
		return m.regions
	}

	m.regions = m.tree.Regions(float64(m.cfg.Spacing), m.gridSize())
	m.regionHash = hash
	m.regionsOK = true
	m.arrangeContents()
	return m.regions
}

// invalidateRegions forces the next layout pass to recompute.
func (m *Model) invalidateRegions() {
	m.regionsOK = false
}

// arrangeContents tells every pane's content its inner dimensions:
// region minus the border (2) and the title line (1).
func (m *Model) arrangeContents() {
	for pane, r := range m.regions {
		content, ok := m.contents[pane]
		if !ok {
			continue
		}
		x0, y0, x1, y1 := cellBounds(r)
		content.Arrange(max(x1-x0-2, 0), max(y1-y0-3, 0))
	}
}

// cellBounds rounds a float region to terminal cell edges. Rounding the
// edges rather than the extents keeps adjacent panes seamless.
func cellBounds(r grid.Rectangle) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X))
	y0 = int(math.Round(r.Y))
	x1 = int(math.Round(r.X + r.Width))
	y1 = int(math.Round(r.Y + r.Height))
	return x0, y0, x1, y1
}

// focusedPane returns the pane the workspace considers active.
func (m Model) focusedPane() (grid.Pane, bool) {
	target, ok := m.translator.State().Focused()
	if !ok {
		return 0, false
	}
	return target.Pane, true
}

// newContent rotates through the content kinds for freshly split panes.
func (m *Model) newContent() Content {
	c := contentFactories[m.nextKind%len(contentFactories)]()
	m.nextKind++
	return c
}
