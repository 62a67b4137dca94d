package grid

import "errors"

// ErrPaneNotFound is returned when an operation references a pane that is
// not present in the tree. The tree is left unchanged.
var ErrPaneNotFound = errors.New("pane not found")
