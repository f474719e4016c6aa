package discord

import (
	"fmt"

	"github.com/keshon/textroute/internal/router"
)

// Purge deletes up to count recent messages from the channel the command
// came from, the invoking message included.
func (p *Payload) Purge(inv *router.Invocation, count int) (int, error) {
	msgs, err := p.Session.ChannelMessages(inv.Message.ChannelID, count, "", "", "")
	if err != nil {
		return 0, fmt.Errorf("list messages: %w", err)
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := p.Session.ChannelMessagesBulkDelete(inv.Message.ChannelID, ids); err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}
	return len(ids), nil
}
