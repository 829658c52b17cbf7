package layers

import (
	"sort"

	"github.com/maruel/natural"
)

// NodeLayers maps attributes of a single node to layers holding them.
type NodeLayers struct {
	attrs map[string][]string
}

// IsLayered returns names of all layers any attribute of the node is on,
// sorted naturally. Empty result means node is not layered.
func (nl *NodeLayers) IsLayered() []string {
	seen := make(map[string]struct{})
	var res []string
	for _, layers := range nl.attrs {
		for _, l := range layers {
			if _, ok := seen[l]; ok || l == "" {
				continue
			}
			seen[l] = struct{}{}
			res = append(res, l)
		}
	}
	sort.Sort(natural.StringSlice(res))
	return res
}

// LayersForAttribute returns layers holding attribute in stack order.
func (nl *NodeLayers) LayersForAttribute(attr string) []string {
	return nl.attrs[attr]
}
