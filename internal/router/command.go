// Package router is a transport-agnostic text-command engine: a routing trie
// over whitespace-delimited command paths, an argument tokenizer driven by
// declared parameter signatures, and a dispatcher that turns inbound messages
// into exactly one handler run or one structured error event. How messages
// arrive and how replies go out (Discord, console, tests) is defined by
// adapters.
package router

import "context"

// Message is one inbound chat message as seen by the engine.
type Message struct {
	ID         string
	Text       string
	AuthorID   string
	AuthorName string
	ChannelID  string
	GuildID    string
}

// Actor identifies who sent the message. Meta carries adapter facts
// (admin flag, role ids) that permission rules may inspect.
type Actor struct {
	ID   string
	Name string
	Meta map[string]interface{}
}

// Invocation is what permission checks and handlers receive: the message,
// its author, the parsed arguments, and an opaque adapter payload (e.g. the
// Discord session plus event).
type Invocation struct {
	Message Message
	Actor   Actor
	Args    []string
	Data    interface{}
}

// PermissionFunc decides whether the actor may run a command. Evaluated
// fresh on every dispatch; the reason is shown to the user on denial.
type PermissionFunc func(inv *Invocation) (allowed bool, reason string)

// HandlerFunc runs the command with parsed arguments.
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// Spec declares a command for registration with a Builder.
type Spec struct {
	Path        string // full invocable name, segments separated by spaces
	Aliases     []string
	Category    string
	Description string
	Params      []Param
	Hidden      bool // routed but excluded from listings
	Permission  PermissionFunc
	Handler     HandlerFunc
}

// Command is a registered command node. Immutable after registration.
type Command struct {
	path       string
	aliases    []string
	category   string
	descr      string
	params     []Param
	hidden     bool
	permission PermissionFunc
	handler    HandlerFunc
}

func (c *Command) Path() string        { return c.path }
func (c *Command) Aliases() []string   { return c.aliases }
func (c *Command) Category() string    { return c.category }
func (c *Command) Description() string { return c.descr }
func (c *Command) Params() []Param     { return c.params }
func (c *Command) Hidden() bool        { return c.hidden }

// Usage renders the invocable name followed by its signature.
func (c *Command) Usage() string {
	if sig := FormatSignature(c.params); sig != "" {
		return c.path + " " + sig
	}
	return c.path
}

// CanRun evaluates the permission predicate. Commands without one are open.
func (c *Command) CanRun(inv *Invocation) (bool, string) {
	if c.permission == nil {
		return true, ""
	}
	return c.permission(inv)
}

// Run invokes the handler. Faults are caught at the dispatch boundary,
// not here.
func (c *Command) Run(ctx context.Context, inv *Invocation) error {
	return c.handler(ctx, inv)
}
