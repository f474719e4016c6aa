package command

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/keshon/textroute/internal/router"
)

func rollSpec() router.Spec {
	return router.Spec{
		Path:        "roll",
		Aliases:     []string{"dice"},
		Category:    "Fun",
		Description: "Roll a die, six-sided unless told otherwise",
		Params: []router.Param{
			{Name: "sides", Kind: router.Optional},
		},
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			sides := 6
			if len(inv.Args) > 0 {
				sides, err = strconv.Atoi(inv.Args[0])
				if err != nil || sides < 2 {
					return e.Reply(inv, fmt.Sprintf("%q is not a die I can roll.", inv.Args[0]))
				}
			}
			return e.Reply(inv, fmt.Sprintf("🎲 You rolled a %d (d%d).", 1+rand.Intn(sides), sides))
		},
	}
}
