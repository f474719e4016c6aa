package command

import (
	"context"

	"github.com/keshon/textroute/internal/router"
)

func echoSpec() router.Spec {
	return router.Spec{
		Path:        "echo",
		Aliases:     []string{"say"},
		Category:    "Fun",
		Description: "Repeat the rest of the message verbatim",
		Params: []router.Param{
			{Name: "text", Kind: router.Unparsed},
		},
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			if inv.Args[0] == "" {
				return e.Reply(inv, "Nothing to echo.")
			}
			return e.Reply(inv, inv.Args[0])
		},
	}
}
