package router

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// EventKind classifies dispatch outcomes.
type EventKind int

const (
	// EventDispatch fires once just before a handler runs.
	EventDispatch EventKind = iota
	// EventUnknownCommand means no registered path matched the text.
	EventUnknownCommand
	// EventBadArgCount means no candidate's signature fit the tokens.
	EventBadArgCount
	// EventBadPermissions means the matched command's predicate denied.
	EventBadPermissions
	// EventException means a handler faulted or a hard parse error occurred.
	EventException
)

func (k EventKind) String() string {
	switch k {
	case EventDispatch:
		return "dispatch"
	case EventUnknownCommand:
		return "unknown command"
	case EventBadArgCount:
		return "bad argument count"
	case EventBadPermissions:
		return "bad permissions"
	case EventException:
		return "exception"
	}
	return "unknown"
}

// Event is the structured outcome notification for one message.
type Event struct {
	Kind    EventKind
	Message Message
	Command *Command // nil when no command matched
	Reason  string   // permission denial reason, when any
	Err     error    // cause, when any
}

// Notifier receives every dispatch outcome. It runs on the dispatching
// goroutine, so it must not block for long.
type Notifier func(Event)

// Options configures a Dispatcher before any message flows.
type Options struct {
	// Triggers holds the recognized command-trigger characters. A message
	// must start with one of them, which is stripped before routing. Empty
	// means every message is a routing candidate.
	Triggers string
	// SelfID reports the bot's current identity so its own messages are
	// ignored. Read fresh on every message; nil disables the check.
	SelfID func() string
	// Notify receives the outcome events. Nil drops them.
	Notify Notifier
}

// Dispatcher runs the message → outcome pipeline. It holds only immutable
// state after construction, so any number of messages may be in flight at
// once.
type Dispatcher struct {
	router   *Router
	triggers []rune
	selfID   func() string
	notify   Notifier
}

// NewDispatcher wires a built router to its message pipeline.
func NewDispatcher(r *Router, opts Options) *Dispatcher {
	return &Dispatcher{
		router:   r,
		triggers: []rune(opts.Triggers),
		selfID:   opts.SelfID,
		notify:   opts.Notify,
	}
}

// HandleMessage runs the full pipeline for one message: ignore filter,
// routing, per-candidate argument parsing, permission check, handler. At
// most one handler runs, and every message that passes the ignore filter
// produces exactly one terminal event.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg Message, actor Actor, data interface{}) {
	text := msg.Text
	if text == "" {
		return
	}
	if d.selfID != nil && msg.AuthorID == d.selfID() {
		return
	}
	if len(d.triggers) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if !d.isTrigger(r) {
			return
		}
		text = text[size:]
	}

	candidates, offset := ParseCommand(text, d.router.root)
	if candidates == nil {
		d.emit(Event{Kind: EventUnknownCommand, Message: msg})
		return
	}

	var firstBad error
	for _, cmd := range candidates {
		args, err := ParseArgs(text, offset, cmd)
		if err != nil {
			var bad *BadArgCountError
			if errors.As(err, &bad) {
				if firstBad == nil {
					firstBad = err
				}
				continue
			}
			// Hard parse faults stop the overload walk immediately.
			d.emit(Event{Kind: EventException, Message: msg, Command: cmd, Err: err})
			return
		}

		inv := &Invocation{Message: msg, Actor: actor, Args: args, Data: data}
		allowed, reason := cmd.CanRun(inv)
		if !allowed {
			d.emit(Event{Kind: EventBadPermissions, Message: msg, Command: cmd, Reason: reason})
			return
		}

		d.emit(Event{Kind: EventDispatch, Message: msg, Command: cmd})
		if err := d.run(ctx, cmd, inv); err != nil {
			d.emit(Event{Kind: EventException, Message: msg, Command: cmd, Err: err})
		}
		return
	}

	d.emit(Event{Kind: EventBadArgCount, Message: msg, Command: candidates[0], Err: firstBad})
}

// run shields the dispatch loop from handler faults.
func (d *Dispatcher) run(ctx context.Context, cmd *Command, inv *Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return cmd.Run(ctx, inv)
}

func (d *Dispatcher) isTrigger(r rune) bool {
	for _, t := range d.triggers {
		if t == r {
			return true
		}
	}
	return false
}

func (d *Dispatcher) emit(ev Event) {
	if d.notify != nil {
		d.notify(ev)
	}
}
