// pattern: Functional Core

package grid

// SplitLayout is the resolved geometry of one split for a single layout
// pass: the undivided rectangle its two children jointly occupy, its axis
// and its ratio. The resize hit-test works on this rectangle, which is the
// full extent of the divider line.
type SplitLayout struct {
	Split  Split
	Axis   Axis
	Bounds Rectangle
	Ratio  float64
}

// Regions computes the rectangle assigned to every pane for the given
// inter-pane spacing and container size. The result is a total-coverage,
// non-overlapping tiling: leaf rectangles plus spacing gaps exactly fill
// the container. Regions are derived state — recompute after every tree or
// container mutation, never reuse a map across them.
func (t *Tree) Regions(spacing float64, container Size) map[Pane]Rectangle {
	regions := make(map[Pane]Rectangle, t.Len())
	subdivide(t.root, Rectangle{Width: container.Width, Height: container.Height}, spacing,
		func(pane Pane, r Rectangle) { regions[pane] = r }, nil)
	return regions
}

// SplitLayouts computes the geometry of every split, in traversal order.
// The slice order matters: nearest-split ties resolve to the earlier entry.
func (t *Tree) SplitLayouts(spacing float64, container Size) []SplitLayout {
	layouts := make([]SplitLayout, 0, 8)
	subdivide(t.root, Rectangle{Width: container.Width, Height: container.Height}, spacing,
		nil, func(l SplitLayout) { layouts = append(layouts, l) })
	return layouts
}

// subdivide recursively partitions rect over the node's subtree. A branch
// records its own undivided rectangle, then hands each child its half: the
// first child gets (extent - spacing) * ratio along the split axis, the
// second child the remainder after the spacing gap.
func subdivide(n *node, rect Rectangle, spacing float64, onPane func(Pane, Rectangle), onSplit func(SplitLayout)) {
	if n.isLeaf() {
		if onPane != nil {
			onPane(n.pane, rect)
		}
		return
	}

	if onSplit != nil {
		onSplit(SplitLayout{Split: n.split, Axis: n.axis, Bounds: rect, Ratio: n.ratio})
	}

	var first, second Rectangle
	switch n.axis {
	case Horizontal:
		firstWidth := clampExtent((rect.Width - spacing) * n.ratio)
		secondWidth := clampExtent(rect.Width - spacing - firstWidth)

		first = Rectangle{X: rect.X, Y: rect.Y, Width: firstWidth, Height: rect.Height}
		second = Rectangle{X: rect.X + firstWidth + spacing, Y: rect.Y, Width: secondWidth, Height: rect.Height}
	case Vertical:
		firstHeight := clampExtent((rect.Height - spacing) * n.ratio)
		secondHeight := clampExtent(rect.Height - spacing - firstHeight)

		first = Rectangle{X: rect.X, Y: rect.Y, Width: rect.Width, Height: firstHeight}
		second = Rectangle{X: rect.X, Y: rect.Y + firstHeight + spacing, Width: rect.Width, Height: secondHeight}
	}

	subdivide(n.first, first, spacing, onPane, onSplit)
	subdivide(n.second, second, spacing, onPane, onSplit)
}

// clampExtent keeps subdivided sizes non-negative when the available space
// is smaller than the spacing.
func clampExtent(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
