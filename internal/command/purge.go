package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/keshon/textroute/internal/router"
)

const purgeLimit = 100

func purgeSpec(adminRule router.PermissionFunc) router.Spec {
	return router.Spec{
		Path:        "purge now",
		Aliases:     []string{"prune"},
		Category:    "Moderation",
		Description: "Delete the most recent messages in this channel",
		Permission:  adminRule,
		Params: []router.Param{
			{Name: "count", Kind: router.Required},
		},
		Handler: func(ctx context.Context, inv *router.Invocation) error {
			e, err := env(inv)
			if err != nil {
				return err
			}
			count, err := strconv.Atoi(inv.Args[0])
			if err != nil || count < 1 || count > purgeLimit {
				return e.Reply(inv, fmt.Sprintf("Count must be between 1 and %d.", purgeLimit))
			}
			p, ok := inv.Data.(Purger)
			if !ok {
				return e.Reply(inv, "Purging is not available here.")
			}
			deleted, err := p.Purge(inv, count)
			if err != nil {
				return fmt.Errorf("purge %d messages: %w", count, err)
			}
			return e.Reply(inv, fmt.Sprintf("Deleted %d message(s).", deleted))
		},
	}
}
