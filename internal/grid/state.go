// pattern: Functional Core

package grid

import "math"

// FocusKind distinguishes how a pane came to be highlighted.
type FocusKind int

const (
	// Focused marks the pane selected by a click or a completed drag.
	Focused FocusKind = iota
	// Hovered marks the pane highlighted by pointer position only.
	Hovered
)

// FocusTarget pairs a pane with how it is focused.
type FocusTarget struct {
	Pane Pane
	Kind FocusKind
}

// State holds the transient interaction state of the grid: the focused
// pane, the pane being dragged and the split being resized. Picking a pane
// and picking a split are mutually exclusive modes.
type State struct {
	focus    *FocusTarget
	picked   *Pane
	resizing *pickedSplit
}

type pickedSplit struct {
	split Split
	axis  Axis
}

// NewState returns an idle interaction state.
func NewState() *State {
	return &State{}
}

// Focus marks the pane as focused.
func (s *State) Focus(pane Pane) {
	s.focus = &FocusTarget{Pane: pane, Kind: Focused}
}

// Hover marks the pane as highlighted by the pointer without focusing it.
func (s *State) Hover(pane Pane) {
	s.focus = &FocusTarget{Pane: pane, Kind: Hovered}
}

// Unfocus clears the focus, e.g. after a press outside all pane regions.
func (s *State) Unfocus() {
	s.focus = nil
}

// Focused returns the current focus target, if any.
func (s *State) Focused() (FocusTarget, bool) {
	if s.focus == nil {
		return FocusTarget{}, false
	}
	return *s.focus, true
}

// PickPane begins dragging the pane. Any picked split is released first:
// the two pick modes never coexist.
func (s *State) PickPane(pane Pane) {
	p := pane
	s.picked = &p
	s.resizing = nil
}

// PickedPane returns the pane being dragged, if any.
func (s *State) PickedPane() (Pane, bool) {
	if s.picked == nil {
		return 0, false
	}
	return *s.picked, true
}

// DropPane ends the drag: the picked pane is re-focused and returned.
// Resolving the drop target against regions is the translator's job.
func (s *State) DropPane() (Pane, bool) {
	if s.picked == nil {
		return 0, false
	}
	pane := *s.picked
	s.picked = nil
	s.Focus(pane)
	return pane, true
}

// PickSplit begins resizing the split. Ignored while a pane is picked.
func (s *State) PickSplit(split Split, axis Axis) {
	if s.picked != nil {
		return
	}
	s.resizing = &pickedSplit{split: split, axis: axis}
}

// PickedSplit returns the split being resized, if any.
func (s *State) PickedSplit() (Split, Axis, bool) {
	if s.resizing == nil {
		return 0, Horizontal, false
	}
	return s.resizing.split, s.resizing.axis, true
}

// DropSplit ends the resize unconditionally.
func (s *State) DropSplit() {
	s.resizing = nil
}

// Invalidate clears any focus, pick or resize state referencing the pane.
// Call after removing a pane so stale tokens cannot leak into later passes.
func (s *State) Invalidate(pane Pane) {
	if s.focus != nil && s.focus.Pane == pane {
		s.focus = nil
	}
	if s.picked != nil && *s.picked == pane {
		s.picked = nil
	}
}

// dividerMidpoint returns the center of the split's divider line. A
// horizontal split's divider is the vertical line at x + width*ratio; a
// vertical split's divider is the horizontal line at y + height*ratio.
func dividerMidpoint(l SplitLayout) Point {
	switch l.Axis {
	case Horizontal:
		return Point{
			X: l.Bounds.X + l.Bounds.Width*l.Ratio,
			Y: l.Bounds.Y + l.Bounds.Height/2,
		}
	default:
		return Point{
			X: l.Bounds.X + l.Bounds.Width/2,
			Y: l.Bounds.Y + l.Bounds.Height*l.Ratio,
		}
	}
}

// NearestSplit picks the split whose divider midpoint is closest to the
// cursor. Distances are rounded to the nearest integer before comparison;
// ties resolve to the earlier layout, i.e. first in traversal order, so
// repeated calls with the same inputs always grab the same split.
func NearestSplit(layouts []SplitLayout, cursor Point) (SplitLayout, bool) {
	if len(layouts) == 0 {
		return SplitLayout{}, false
	}

	best := layouts[0]
	bestDist := int64(math.Round(cursor.Distance(dividerMidpoint(best))))
	for _, l := range layouts[1:] {
		d := int64(math.Round(cursor.Distance(dividerMidpoint(l))))
		if d < bestDist {
			best = l
			bestDist = d
		}
	}
	return best, true
}

// ResizeRatio projects the cursor onto the split's axis within the split's
// recorded rectangle, normalized to [0, 1] and clamped to [0.1, 0.9]. The
// result is a candidate ratio: callers apply it via Tree.Resize. A
// degenerate (zero-extent) rectangle yields the current ratio unchanged.
func ResizeRatio(l SplitLayout, cursor Point) float64 {
	var offset, extent float64
	switch l.Axis {
	case Horizontal:
		offset = cursor.X - l.Bounds.X
		extent = l.Bounds.Width
	default:
		offset = cursor.Y - l.Bounds.Y
		extent = l.Bounds.Height
	}

	if extent <= 0 {
		return clampRatio(l.Ratio)
	}
	return clampRatio(offset / extent)
}
