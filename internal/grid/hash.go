// pattern: Functional Core

package grid

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Node-kind markers fed to the hash so a leaf and a branch can never
// collide on shape.
const (
	hashLeaf   = 0x1
	hashBranch = 0x2
)

// Hash returns a deterministic fingerprint of the tree's structural and
// geometric state for the given container: node shape, pane and split
// tokens, axes, ratios, and the container dimensions. Hosts compare it
// across passes to decide whether cached downstream layout must be
// recomputed. Equal trees and containers always hash equal; any structural
// mutation, swap, resize or container change produces a different input
// stream.
func (t *Tree) Hash(container Size) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeUint := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	t.walk(func(n *node) {
		writeUint(hashLeaf)
		writeUint(uint64(n.pane))
	}, func(n *node) {
		writeUint(hashBranch)
		writeUint(uint64(n.split))
		writeUint(uint64(n.axis))
		writeUint(math.Float64bits(n.ratio))
	})

	writeUint(math.Float64bits(container.Width))
	writeUint(math.Float64bits(container.Height))

	return h.Sum64()
}
