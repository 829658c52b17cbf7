// Package replace maps node names read from an animation file onto nodes of
// the target scene.
//
// Three strategies are available: positional hierarchy matching against the
// selection, literal search and replace with optional prefix and suffix, and
// an explicit table loaded from a map file. Plain dependency nodes and
// animation layers are always matched by name.
package replace

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"animc/common"
	"animc/scene"
	"animc/token"
)

// Scene answers whether node with given name exists.
type Scene interface {
	NodeExists(name string) bool
}

// Replacer is a name matching strategy.
type Replacer interface {
	scene.NameReplacer
	// TurnOffHierarchy switches positional matching to matching by name. Files
	// carrying embedded edits are always matched by name.
	TurnOffHierarchy()
}

// Options selects and configures strategy.
type Options struct {
	Mode    common.MatchMode
	Search  string
	Replace string
	Prefix  string
	Suffix  string
	MapFile string
}

// New returns replacer for options. Selection is the ordered list of nodes
// names may resolve to. Map mode with unreadable map file falls back to
// hierarchy matching.
func New(opts Options, sc Scene, selection []scene.NodeInfo, log *zap.Logger) Replacer {
	if log == nil {
		log = zap.NewNop()
	}
	m := newMatcher(sc, selection)

	switch opts.Mode {
	case common.MatchModeSearch:
		return &SearchReplace{
			Search:  opts.Search,
			Replace: opts.Replace,
			Prefix:  opts.Prefix,
			Suffix:  opts.Suffix,
			m:       m,
		}
	case common.MatchModeMap:
		t, err := LoadTable(opts.MapFile, m)
		if err == nil {
			return t
		}
		log.Warn("Unable to use map file, matching by hierarchy", zap.String("file", opts.MapFile), zap.Error(err))
	}
	return NewHierarchy(selection, m)
}

// matcher resolves names against the scene and current selection.
type matcher struct {
	scene    Scene
	selected map[string]struct{}
}

func newMatcher(sc Scene, selection []scene.NodeInfo) *matcher {
	m := &matcher{scene: sc, selected: make(map[string]struct{}, len(selection))}
	for _, n := range selection {
		m.selected[n.Name] = struct{}{}
	}
	return m
}

// byName accepts node present in scene and selection, retrying with
// namespace stripped. Layers do not have to be selected.
func (m *matcher) byName(kind common.NodeKind, name string) (string, bool) {
	if !m.scene.NodeExists(name) {
		pos := strings.LastIndexByte(name, ':')
		if pos < 0 {
			return name, false
		}
		name = name[pos+1:]
		if !m.scene.NodeExists(name) {
			return name, false
		}
	}
	if kind == common.NodeKindAnimLayer {
		return name, true
	}
	_, ok := m.selected[name]
	return name, ok
}

// SearchReplace renames nodes by replacing every occurrence of Search and
// adding Prefix and Suffix.
type SearchReplace struct {
	Search  string
	Replace string
	Prefix  string
	Suffix  string
	m       *matcher
}

// Rename applies replacement rules to the name.
func (r *SearchReplace) Rename(name string) string {
	res := name
	if r.Search != "" {
		res = strings.ReplaceAll(res, r.Search, r.Replace)
	}
	res = r.Prefix + res + r.Suffix
	if res == "" {
		return name
	}
	return res
}

func (r *SearchReplace) Resolve(kind common.NodeKind, name string, _, _ int) (string, bool) {
	return r.m.byName(kind, r.Rename(name))
}

func (r *SearchReplace) TurnOffHierarchy() {}

// Table renames nodes using explicit old to new pairs.
type Table struct {
	from []string
	to   []string
	m    *matcher
}

// ReadTable parses map file text: whitespace separated names alternating
// between the current and the new one. Unpaired trailing name is dropped.
func ReadTable(data []byte) (from, to []string) {
	tk := token.NewBytes(data)
	current := true
	for !tk.EOF() {
		w := tk.NextWord()
		if w == "" {
			continue
		}
		if current {
			from = append(from, w)
		} else {
			to = append(to, w)
		}
		current = !current
	}
	if len(from) != len(to) && len(from) > 0 {
		from = from[:len(from)-1]
	}
	return from, to
}

// LoadTable reads map file.
func LoadTable(path string, m *matcher) (*Table, error) {
	if path == "" {
		return nil, fmt.Errorf("map file is not specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read map file: %w", err)
	}
	from, to := ReadTable(data)
	return &Table{from: from, to: to, m: m}, nil
}

// Rename returns new name for the node or name itself when table has no
// entry.
func (t *Table) Rename(name string) string {
	for i, cur := range t.from {
		if cur == name && i < len(t.to) {
			return t.to[i]
		}
	}
	return name
}

func (t *Table) Resolve(kind common.NodeKind, name string, _, _ int) (string, bool) {
	return t.m.byName(kind, t.Rename(name))
}

func (t *Table) TurnOffHierarchy() {}
