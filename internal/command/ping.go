package command

import (
	"context"

	"github.com/keshon/textroute/internal/router"
)

func pingSpec() router.Spec {
	return router.Spec{
		Path:        "ping",
		Aliases:     []string{"pong"},
		Category:    "Core",
		Description: "Check that the bot is alive",
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			return e.Reply(inv, "Pong!")
		},
	}
}
