// Package command holds the built-in command set. Handlers stay
// transport-agnostic: everything they need beyond parsed arguments comes
// from the adapter payload behind small interfaces.
package command

import (
	"fmt"

	"github.com/keshon/textroute/internal/router"
)

// Env is what every adapter payload provides to handlers.
type Env interface {
	Reply(inv *router.Invocation, text string) error
	Router() *router.Router
}

// Purger is implemented by payloads that can delete recent channel
// messages (the Discord adapter). Others fall back to a refusal reply.
type Purger interface {
	Purge(inv *router.Invocation, count int) (int, error)
}

func env(inv *router.Invocation) (Env, error) {
	e, ok := inv.Data.(Env)
	if !ok {
		return nil, fmt.Errorf("payload %T cannot reply", inv.Data)
	}
	return e, nil
}

// Deps carries what registration needs beyond the builder itself.
type Deps struct {
	// AdminRule gates the admin-only commands.
	AdminRule router.PermissionFunc
}

// Register adds the built-in command set to the builder.
func Register(b *router.Builder, deps Deps) error {
	for _, spec := range []router.Spec{
		pingSpec(),
		echoSpec(),
		rollSpec(),
		greetSpec(),
		greetManySpec(),
		purgeSpec(deps.AdminRule),
		helpSpec(),
	} {
		if err := b.Add(spec); err != nil {
			return err
		}
	}
	return nil
}
