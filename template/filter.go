// Package template restricts nodes and attributes taking part in import or
// export to the ones listed by a container template.
package template

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Filter is allow list built from "node_attr" entries. Nil filter or filter
// without entries set allows everything.
type Filter struct {
	set   bool
	nodes map[string]map[string]struct{}
}

// New builds filter from "node_attr" entries. Node and attribute are split at
// the last underscore so node names may contain underscores themselves.
// Malformed entries are ignored.
func New(entries []string) *Filter {
	f := &Filter{set: true, nodes: make(map[string]map[string]struct{})}
	for _, e := range entries {
		f.add(e)
	}
	return f
}

func (f *Filter) add(entry string) bool {
	pos := strings.LastIndexByte(entry, '_')
	if pos < 1 || pos == len(entry)-1 {
		return false
	}
	node, attr := entry[:pos], entry[pos+1:]
	attrs, ok := f.nodes[node]
	if !ok {
		attrs = make(map[string]struct{})
		f.nodes[node] = attrs
	}
	attrs[attr] = struct{}{}
	return true
}

// IsSet reports whether filter restricts anything.
func (f *Filter) IsSet() bool {
	return f != nil && f.set
}

// IsNodeAllowed reports whether node is listed.
func (f *Filter) IsNodeAllowed(name string) bool {
	if !f.IsSet() {
		return true
	}
	_, ok := f.nodes[name]
	return ok
}

// IsAttributeAllowed reports whether attribute of the node is listed.
func (f *Filter) IsAttributeAllowed(node, attr string) bool {
	if !f.IsSet() {
		return true
	}
	attrs, ok := f.nodes[node]
	if !ok {
		return false
	}
	_, ok = attrs[attr]
	return ok
}

// AttributesForNode returns sorted attributes listed for the node.
func (f *Filter) AttributesForNode(node string) []string {
	if !f.IsSet() {
		return nil
	}
	res := make([]string, 0, len(f.nodes[node]))
	for a := range f.nodes[node] {
		res = append(res, a)
	}
	slices.Sort(res)
	return res
}

// Nodes returns sorted names of all listed nodes.
func (f *Filter) Nodes() []string {
	if !f.IsSet() {
		return nil
	}
	res := make([]string, 0, len(f.nodes))
	for n := range f.nodes {
		res = append(res, n)
	}
	slices.Sort(res)
	return res
}

// Read loads container template XML. Without view attribute names come from
// the named template (first template when name is empty), with view only
// properties listed by that view are used.
func Read(r io.Reader, name, view string, log *zap.Logger) (*Filter, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read template: %w", err)
	}

	var elements []*etree.Element
	switch {
	case view != "":
		elements = doc.FindElements(fmt.Sprintf("//view[@name='%s']//property", view))
	case name != "":
		elements = doc.FindElements(fmt.Sprintf("//template[@name='%s']/attribute", name))
	default:
		if tpl := doc.FindElement("//template"); tpl != nil {
			elements = tpl.SelectElements("attribute")
		}
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("template %q (view %q) has no entries", name, view)
	}

	f := &Filter{set: true, nodes: make(map[string]map[string]struct{})}
	for _, el := range elements {
		entry := el.SelectAttrValue("name", "")
		if !f.add(entry) {
			log.Warn("Ignoring malformed template entry", zap.String("entry", entry))
		}
	}
	return f, nil
}

// LoadFile is Read for a file on disk.
func LoadFile(path, name, view string, log *zap.Logger) (*Filter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open template: %w", err)
	}
	defer file.Close()

	return Read(file, name, view, log)
}
