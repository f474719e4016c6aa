package router

import "strings"

type mapEntry struct {
	cmd   *Command
	alias bool
}

// Map is one node of the routing trie. Each node holds the commands
// registered at its path (several when aliases or overloads collide) and the
// child nodes for deeper segments. Child and command iteration order is
// insertion order; callers rely on it for deterministic listings and for the
// tie-break between overloads.
type Map struct {
	name     string
	fullPath string
	entries  []mapEntry
	children map[string]*Map
	order    []string
}

func newMap(name, fullPath string) *Map {
	return &Map{
		name:     name,
		fullPath: fullPath,
		children: make(map[string]*Map),
	}
}

// Name returns the node's own path segment. Empty for the root.
func (m *Map) Name() string { return m.name }

// FullPath returns all ancestor segments joined by single spaces.
func (m *Map) FullPath() string { return m.fullPath }

// AddCommand walks or creates a node for each whitespace-delimited segment
// of path and appends cmd at the terminal node. Duplicate paths are
// tolerated: an alias may coincide with another command's primary path, and
// overloads share a path on purpose. First registered is first tried.
// Alias entries route like any other but stay out of listings.
func (m *Map) AddCommand(path string, cmd *Command, isAlias bool) {
	node := m
	for _, seg := range strings.Fields(path) {
		child, ok := node.children[seg]
		if !ok {
			full := seg
			if node.fullPath != "" {
				full = node.fullPath + " " + seg
			}
			child = newMap(seg, full)
			node.children[seg] = child
			node.order = append(node.order, seg)
		}
		node = child
	}
	node.entries = append(node.entries, mapEntry{cmd: cmd, alias: isAlias})
}

// GetItem resolves a full whitespace-joined path to its node, or nil when
// any segment is absent.
func (m *Map) GetItem(fullPath string) *Map {
	node := m
	for _, seg := range strings.Fields(fullPath) {
		child, ok := node.children[seg]
		if !ok {
			return nil
		}
		node = child
	}
	if node == m {
		return nil
	}
	return node
}

// SubGroups returns the immediate child nodes in insertion order.
func (m *Map) SubGroups() []*Map {
	out := make([]*Map, 0, len(m.order))
	for _, seg := range m.order {
		out = append(out, m.children[seg])
	}
	return out
}

// Commands returns every command registered at this node in registration
// order, alias entries included. This is the candidate order the dispatcher
// tries.
func (m *Map) Commands() []*Command {
	out := make([]*Command, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.cmd)
	}
	return out
}

// VisibleCommands returns the commands listings should show: primary
// entries whose command is not hidden.
func (m *Map) VisibleCommands() []*Command {
	var out []*Command
	for _, e := range m.entries {
		if e.alias || e.cmd.hidden {
			continue
		}
		out = append(out, e.cmd)
	}
	return out
}

func (m *Map) child(seg string) *Map {
	return m.children[seg]
}
