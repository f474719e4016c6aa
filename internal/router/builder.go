package router

import (
	"fmt"
	"strings"
)

// Builder assembles the routing trie and category index during startup.
// Registration is single-threaded; Build produces the immutable Router the
// dispatcher reads, and the builder refuses additions afterwards.
type Builder struct {
	root     *Map
	cats     map[string]*Map
	catOrder []string
	all      []*Command
	built    bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root: newMap("", ""),
		cats: make(map[string]*Map),
	}
}

// Add registers one command at its path and under every alias. Aliases are
// root-level names and may collide with other commands' paths; the category
// index lists each visible command once under its primary path.
func (b *Builder) Add(spec Spec) error {
	if b.built {
		return fmt.Errorf("register %q: builder is locked", spec.Path)
	}
	path := strings.Join(strings.Fields(spec.Path), " ")
	if path == "" {
		return fmt.Errorf("register command with empty path")
	}
	if spec.Handler == nil {
		return fmt.Errorf("register %q: no handler", path)
	}
	if err := validateSignature(spec.Params); err != nil {
		return fmt.Errorf("register %q: %w", path, err)
	}

	for _, a := range spec.Aliases {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("register %q: empty alias", path)
		}
	}

	cmd := &Command{
		path:       path,
		aliases:    append([]string(nil), spec.Aliases...),
		category:   spec.Category,
		descr:      spec.Description,
		params:     append([]Param(nil), spec.Params...),
		hidden:     spec.Hidden,
		permission: spec.Permission,
		handler:    spec.Handler,
	}

	b.root.AddCommand(path, cmd, false)
	for _, a := range cmd.aliases {
		b.root.AddCommand(a, cmd, true)
	}

	if !cmd.hidden {
		cat, ok := b.cats[cmd.category]
		if !ok {
			cat = newMap("", "")
			b.cats[cmd.category] = cat
			b.catOrder = append(b.catOrder, cmd.category)
		}
		cat.AddCommand(path, cmd, false)
	}

	b.all = append(b.all, cmd)
	return nil
}

// MustAdd is Add for static registration blocks.
func (b *Builder) MustAdd(spec Spec) {
	if err := b.Add(spec); err != nil {
		panic(err)
	}
}

// Build locks the builder and returns the read-only routing snapshot.
// Concurrent dispatches share it without locking.
func (b *Builder) Build() *Router {
	b.built = true
	return &Router{
		root:     b.root,
		cats:     b.cats,
		catOrder: b.catOrder,
		all:      b.all,
	}
}

// Router is the immutable result of registration: the routing trie, the
// category index, and the flat command list.
type Router struct {
	root     *Map
	cats     map[string]*Map
	catOrder []string
	all      []*Command
}

// Root returns the trie root.
func (r *Router) Root() *Map { return r.root }

// GetItem resolves a full path to its trie node, or nil.
func (r *Router) GetItem(fullPath string) *Map {
	return r.root.GetItem(fullPath)
}

// Commands returns every registered command in registration order, once
// each regardless of aliases.
func (r *Router) Commands() []*Command {
	return r.all
}

// Categories returns category names in first-registration order. The empty
// string is the uncategorized bucket.
func (r *Router) Categories() []string {
	return r.catOrder
}

// Category returns the listing trie scoped to one category, or nil. It is
// used for organized help output, never for routing.
func (r *Router) Category(name string) *Map {
	return r.cats[name]
}
