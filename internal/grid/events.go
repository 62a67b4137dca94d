// pattern: Functional Core

package grid

// PointerButton identifies which button a pointer event carries.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	// ButtonPrimary focuses, picks and drops panes.
	ButtonPrimary
	// ButtonSecondary picks and drops splits.
	ButtonSecondary
)

// PointerAction is the kind of pointer event.
type PointerAction int

const (
	ActionPress PointerAction = iota
	ActionRelease
	ActionMove
)

// PointerEvent is one raw pointer input in container coordinates.
type PointerEvent struct {
	Action PointerAction
	Button PointerButton
	Pos    Point
}

// Event is an engine notification produced by the translator. Callers
// switch on the concrete type, apply tree mutations (Swap on Dropped,
// Resize on ResizeRequested) and forward anything else to pane content.
type Event interface {
	isEvent()
}

// Picked reports that a pane drag began.
type Picked struct{ Pane Pane }

// Dropped reports that a dragged pane was released over a distinct target
// pane. The caller typically swaps the two.
type Dropped struct {
	Pane   Pane
	Target Pane
}

// Canceled reports that a drag ended over no pane, or over its own source.
// A cancel is a normal outcome, not a fault.
type Canceled struct{ Pane Pane }

// ResizeRequested carries a candidate ratio for a split being resized.
// The caller applies it via Tree.Resize.
type ResizeRequested struct {
	Split Split
	Ratio float64
}

func (Picked) isEvent()          {}
func (Dropped) isEvent()         {}
func (Canceled) isEvent()        {}
func (ResizeRequested) isEvent() {}

// Translator maps raw pointer input plus the current interaction state
// into engine events. Drag and resize are inert until a handler is
// registered, mirroring the host wiring: an unregistered feature simply
// never picks.
type Translator struct {
	tree  *Tree
	state *State

	spacing       float64
	dragEnabled   bool
	resizeEnabled bool
	modifier      bool
}

// NewTranslator creates a translator over the tree with a fresh state.
func NewTranslator(tree *Tree, spacing float64) *Translator {
	return &Translator{tree: tree, state: NewState(), spacing: spacing}
}

// State exposes the interaction state for rendering (focus ring, drag
// overlay) and invalidation after removals.
func (tr *Translator) State() *State {
	return tr.state
}

// SetSpacing updates the inter-pane spacing used for hit-testing.
func (tr *Translator) SetSpacing(spacing float64) {
	tr.spacing = spacing
}

// EnableDrag registers the pane-drag feature.
func (tr *Translator) EnableDrag(enabled bool) {
	tr.dragEnabled = enabled
}

// EnableResize registers the split-resize feature.
func (tr *Translator) EnableResize(enabled bool) {
	tr.resizeEnabled = enabled
}

// SetModifier tracks the live drag-capable modifier flag. Modifier
// bookkeeping itself is the host's concern.
func (tr *Translator) SetModifier(held bool) {
	tr.modifier = held
}

// ShouldForward reports whether pane content may receive events. While a
// pane is picked the grid intercepts everything, so the dragged pane's own
// content does not also react to the pointer.
func (tr *Translator) ShouldForward() bool {
	_, picked := tr.state.PickedPane()
	return !picked
}

// PaneAt returns the pane whose region contains the point, hit-tested in
// traversal order against a fresh region map.
func (tr *Translator) PaneAt(pos Point, container Size) (Pane, bool) {
	regions := tr.tree.Regions(tr.spacing, container)
	for _, pane := range tr.tree.Panes() {
		if regions[pane].Contains(pos) {
			return pane, true
		}
	}
	return 0, false
}

// HandlePointer feeds one pointer event through the interaction state
// machine and returns the events it produced. Idle is both the initial
// state and where every completed drag or resize returns to.
func (tr *Translator) HandlePointer(ev PointerEvent, container Size) []Event {
	switch {
	case ev.Button == ButtonPrimary && ev.Action == ActionPress:
		return tr.primaryPress(ev.Pos, container)
	case ev.Button == ButtonPrimary && ev.Action == ActionRelease:
		return tr.primaryRelease(ev.Pos, container)
	case ev.Button == ButtonSecondary && ev.Action == ActionPress:
		return tr.secondaryPress(ev.Pos, container)
	case ev.Button == ButtonSecondary && ev.Action == ActionRelease:
		tr.state.DropSplit()
		return nil
	case ev.Action == ActionMove:
		return tr.pointerMove(ev.Pos, container)
	}
	return nil
}

func (tr *Translator) primaryPress(pos Point, container Size) []Event {
	pane, ok := tr.PaneAt(pos, container)
	if !ok {
		tr.state.Unfocus()
		return nil
	}

	if tr.dragEnabled && tr.modifier {
		tr.state.PickPane(pane)
		return []Event{Picked{Pane: pane}}
	}

	tr.state.Focus(pane)
	return nil
}

func (tr *Translator) primaryRelease(pos Point, container Size) []Event {
	pane, picked := tr.state.DropPane()
	if !picked {
		return nil
	}

	target, ok := tr.PaneAt(pos, container)
	if ok && target != pane {
		return []Event{Dropped{Pane: pane, Target: target}}
	}
	return []Event{Canceled{Pane: pane}}
}

func (tr *Translator) secondaryPress(pos Point, container Size) []Event {
	if !tr.resizeEnabled || !tr.modifier {
		return nil
	}
	if _, picked := tr.state.PickedPane(); picked {
		return nil
	}

	layouts := tr.tree.SplitLayouts(tr.spacing, container)
	nearest, ok := NearestSplit(layouts, pos)
	if !ok {
		return nil
	}

	tr.state.PickSplit(nearest.Split, nearest.Axis)
	return tr.resizeEvents(pos, container)
}

func (tr *Translator) pointerMove(pos Point, container Size) []Event {
	return tr.resizeEvents(pos, container)
}

// resizeEvents emits a ResizeRequested for the picked split, if any.
func (tr *Translator) resizeEvents(pos Point, container Size) []Event {
	split, _, ok := tr.state.PickedSplit()
	if !ok {
		return nil
	}

	for _, l := range tr.tree.SplitLayouts(tr.spacing, container) {
		if l.Split == split {
			return []Event{ResizeRequested{Split: split, Ratio: ResizeRatio(l, pos)}}
		}
	}
	// The split vanished under us; release it.
	tr.state.DropSplit()
	return nil
}
