package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/textroute/internal/router"
)

// greet is registered twice on the same path: a single-name overload first,
// then a catch-all for any number of names. Registration order decides
// which one a given argument count lands on.

func greetSpec() router.Spec {
	return router.Spec{
		Path:        "greet",
		Category:    "Fun",
		Description: "Greet someone by name",
		Params: []router.Param{
			{Name: "name", Kind: router.Required},
		},
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			return e.Reply(inv, fmt.Sprintf("Hello, %s!", inv.Args[0]))
		},
	}
}

func greetManySpec() router.Spec {
	return router.Spec{
		Path:        "greet",
		Category:    "Fun",
		Description: "Greet everyone at once",
		Hidden:      true,
		Params: []router.Param{
			{Name: "names", Kind: router.Multiple},
		},
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			if len(inv.Args) == 0 {
				return e.Reply(inv, "Hello, everyone!")
			}
			return e.Reply(inv, fmt.Sprintf("Hello, %s!", strings.Join(inv.Args, ", ")))
		},
	}
}
