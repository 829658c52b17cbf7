package replace

import (
	"slices"

	"animc/common"
	"animc/scene"
)

// Hierarchy matches dag and shape nodes by their position: every request
// takes the next selected node at the requested depth, consuming the
// selection queue. Entries skipped on the way are consumed too.
type Hierarchy struct {
	queue  []scene.NodeInfo
	byName bool
	m      *matcher
}

// NewHierarchy returns positional matcher over depth first ordered selection.
func NewHierarchy(selection []scene.NodeInfo, m *matcher) *Hierarchy {
	return &Hierarchy{queue: slices.Clone(selection), m: m}
}

func (h *Hierarchy) TurnOffHierarchy() {
	h.byName = true
}

// Pending returns number of selection entries not yet consumed.
func (h *Hierarchy) Pending() int {
	return len(h.queue)
}

func (h *Hierarchy) Resolve(kind common.NodeKind, name string, depth, _ int) (string, bool) {
	if h.byName || (kind != common.NodeKindDagNode && kind != common.NodeKindShapeNode) {
		return h.m.byName(kind, name)
	}

	isShape := kind == common.NodeKindShapeNode
	last, found := -1, false
	for i, cand := range h.queue {
		candShape := cand.Kind == common.NodeKindShapeNode
		if candShape != isShape {
			// dag in file against shape in scene or the other way around
			last = i
			continue
		}
		if isShape {
			name, found, last = cand.Name, true, i
			break
		}
		if cand.Depth < depth {
			// went back up the hierarchy, nothing left at this depth
			break
		}
		if cand.Depth == depth {
			name, found, last = cand.Name, true, i
			break
		}
		last = i
	}
	h.queue = h.queue[last+1:]
	return name, found
}
