// pattern: Functional Core

package grid

// Pane identifies a leaf slot in the split tree. Panes are opaque,
// monotonically increasing tokens allocated on insertion and never reused,
// so external references stay valid across unrelated tree mutations.
type Pane int

// Split identifies a branch node dividing space between two children.
type Split int

// Axis is the direction along which a split divides its region.
type Axis int

const (
	// Horizontal splits divide width: children sit side by side.
	Horizontal Axis = iota
	// Vertical splits divide height: children are stacked.
	Vertical
)

// String returns the axis name for logging.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Ratio bounds applied on every resize. The floor and ceiling keep both
// children usable and the subdivision numerically stable.
const (
	minRatio = 0.1
	maxRatio = 0.9
)

func clampRatio(r float64) float64 {
	if r < minRatio {
		return minRatio
	}
	if r > maxRatio {
		return maxRatio
	}
	return r
}

// node is either a leaf holding a pane or a branch holding a split.
// A node is a branch iff first and second are non-nil.
type node struct {
	pane Pane

	split  Split
	axis   Axis
	ratio  float64
	first  *node
	second *node
}

func (n *node) isLeaf() bool {
	return n.first == nil
}

// Tree is the split tree: a strict binary tree of pane leaves and split
// branches. It exclusively owns its node graph; Pane and Split tokens are
// the only references held outside it.
type Tree struct {
	root   *node
	nextID int
}

// NewTree creates a tree holding a single pane and returns that pane.
func NewTree() (*Tree, Pane) {
	t := &Tree{}
	first := Pane(t.allocID())
	t.root = &node{pane: first}
	return t, first
}

func (t *Tree) allocID() int {
	id := t.nextID
	t.nextID++
	return id
}

// Len returns the number of panes in the tree.
func (t *Tree) Len() int {
	n := 0
	t.walk(func(*node) { n++ }, nil)
	return n
}

// Contains reports whether the pane is present in the tree.
func (t *Tree) Contains(pane Pane) bool {
	return t.findLeaf(pane) != nil
}

// ContainsSplit reports whether the split is present in the tree.
func (t *Tree) ContainsSplit(split Split) bool {
	return t.findBranch(split) != nil
}

// Panes enumerates all panes in pre-order, first child before second.
// This is the tree's canonical traversal order: it fixes solver output,
// hash input and nearest-split tie-breaking.
func (t *Tree) Panes() []Pane {
	panes := make([]Pane, 0, 8)
	t.walk(func(n *node) { panes = append(panes, n.pane) }, nil)
	return panes
}

// Branch describes one split in traversal order.
type Branch struct {
	Split Split
	Axis  Axis
	Ratio float64
}

// Branches enumerates all splits in pre-order, first child before second.
func (t *Tree) Branches() []Branch {
	branches := make([]Branch, 0, 8)
	t.walk(nil, func(n *node) {
		branches = append(branches, Branch{Split: n.split, Axis: n.axis, Ratio: n.ratio})
	})
	return branches
}

// walk visits every node in pre-order, calling onLeaf for leaves and
// onBranch for branches. Either callback may be nil.
func (t *Tree) walk(onLeaf func(*node), onBranch func(*node)) {
	var visit func(n *node)
	visit = func(n *node) {
		if n.isLeaf() {
			if onLeaf != nil {
				onLeaf(n)
			}
			return
		}
		if onBranch != nil {
			onBranch(n)
		}
		visit(n.first)
		visit(n.second)
	}
	visit(t.root)
}

func (t *Tree) findLeaf(pane Pane) *node {
	var found *node
	t.walk(func(n *node) {
		if n.pane == pane {
			found = n
		}
	}, nil)
	return found
}

func (t *Tree) findBranch(split Split) *node {
	var found *node
	t.walk(nil, func(n *node) {
		if n.split == split {
			found = n
		}
	})
	return found
}

// parentOf returns the branch whose first or second child is the leaf
// holding pane, or nil if the pane is absent or at the root.
func (t *Tree) parentOf(pane Pane) *node {
	var found *node
	t.walk(nil, func(n *node) {
		if n.first.isLeaf() && n.first.pane == pane {
			found = n
		}
		if n.second.isLeaf() && n.second.pane == pane {
			found = n
		}
	})
	return found
}

// Split replaces the target leaf with a branch holding the target and a
// newly allocated pane at ratio 0.5 on the given axis. The target becomes
// the first child. Returns the new pane and the new split, or
// ErrPaneNotFound if the target is absent.
func (t *Tree) Split(target Pane, axis Axis) (Pane, Split, error) {
	leaf := t.findLeaf(target)
	if leaf == nil {
		return 0, 0, ErrPaneNotFound
	}

	newPane := Pane(t.allocID())
	newSplit := Split(t.allocID())

	*leaf = node{
		split:  newSplit,
		axis:   axis,
		ratio:  0.5,
		first:  &node{pane: target},
		second: &node{pane: newPane},
	}

	return newPane, newSplit, nil
}

// Remove deletes the pane's leaf. The parent branch collapses: the sibling
// subtree is promoted into the parent's slot and the parent's Split token
// is discarded. Returns the sibling pane and true when the sibling was
// itself a leaf (callers use it to re-focus). Removing the sole remaining
// pane is a silent no-op. Returns ErrPaneNotFound if the pane is absent.
func (t *Tree) Remove(pane Pane) (Pane, bool, error) {
	if t.root.isLeaf() {
		if t.root.pane != pane {
			return 0, false, ErrPaneNotFound
		}
		// The last pane cannot be removed.
		return 0, false, nil
	}

	parent := t.parentOf(pane)
	if parent == nil {
		return 0, false, ErrPaneNotFound
	}

	sibling := parent.second
	if sibling.isLeaf() && sibling.pane == pane {
		sibling = parent.first
	}

	*parent = *sibling

	if parent.isLeaf() {
		return parent.pane, true, nil
	}
	return 0, false, nil
}

// Swap exchanges the two panes' positions without altering tree shape.
// Returns ErrPaneNotFound (and mutates nothing) if either is absent.
func (t *Tree) Swap(a, b Pane) error {
	leafA := t.findLeaf(a)
	leafB := t.findLeaf(b)
	if leafA == nil || leafB == nil {
		return ErrPaneNotFound
	}

	leafA.pane, leafB.pane = leafB.pane, leafA.pane
	return nil
}

// Resize sets the split's ratio, clamped to [0.1, 0.9]. Resizing a split
// that is no longer in the tree is a no-op: a resize may race a structural
// mutation within one event-loop turn, and the stale token is simply inert.
func (t *Tree) Resize(split Split, ratio float64) {
	branch := t.findBranch(split)
	if branch == nil {
		return
	}
	branch.ratio = clampRatio(ratio)
}
