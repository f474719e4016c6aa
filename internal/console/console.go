// Package console runs the dispatcher against stdin, one message per line.
// It exists for local development: same routing, no gateway.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/keshon/textroute/internal/router"
)

// Payload is the adapter payload for console dispatches.
type Payload struct {
	out io.Writer
	rt  *router.Router
}

// Reply prints to the console.
func (p *Payload) Reply(inv *router.Invocation, text string) error {
	_, err := fmt.Fprintln(p.out, text)
	return err
}

// Router exposes the routing snapshot.
func (p *Payload) Router() *router.Router {
	return p.rt
}

// Console is a line-oriented front end over one dispatcher.
type Console struct {
	disp *router.Dispatcher
	rt   *router.Router
	in   io.Reader
	out  io.Writer
	log  zerolog.Logger
}

// New builds a console over the given router. Triggers work as on Discord;
// pass them empty to route every line.
func New(rt *router.Router, triggers string, in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	c := &Console{
		rt:  rt,
		in:  in,
		out: out,
		log: log.With().Str("component", "console").Logger(),
	}
	c.disp = router.NewDispatcher(rt, router.Options{
		Triggers: triggers,
		Notify:   c.onDispatchEvent,
	})
	return c
}

// Run reads lines until EOF or cancellation, dispatching each as a message
// from the local operator. The operator is an admin as far as permission
// rules are concerned.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	seq := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		seq++
		msg := router.Message{
			ID:         fmt.Sprintf("console-%d", seq),
			Text:       scanner.Text(),
			AuthorID:   "local",
			AuthorName: "operator",
			ChannelID:  "console",
		}
		actor := router.Actor{
			ID:   "local",
			Name: "operator",
			Meta: map[string]interface{}{"admin": true, "roles": []string{}},
		}
		c.disp.HandleMessage(ctx, msg, actor, &Payload{out: c.out, rt: c.rt})
	}
	return scanner.Err()
}

func (c *Console) onDispatchEvent(ev router.Event) {
	switch ev.Kind {
	case router.EventDispatch:
		c.log.Debug().Str("command", ev.Command.Path()).Msg("Dispatching command")
	case router.EventUnknownCommand:
		fmt.Fprintln(c.out, "Unknown command.")
	case router.EventBadArgCount:
		fmt.Fprintf(c.out, "Usage: %s\n", ev.Command.Usage())
	case router.EventBadPermissions:
		fmt.Fprintln(c.out, ev.Reason)
	case router.EventException:
		c.log.Error().Err(ev.Err).Str("command", ev.Command.Path()).Msg("Command failed")
		fmt.Fprintln(c.out, "Something went wrong running that command.")
	}
}
