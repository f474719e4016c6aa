package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/textroute/internal/router"
)

// actorFor builds the routing actor for a message author, with the facts
// permission rules read: admin flag, channel permission bits, role ids.
func (b *Bot) actorFor(s *discordgo.Session, m *discordgo.MessageCreate) router.Actor {
	actor := router.Actor{
		ID:   m.Author.ID,
		Name: m.Author.Username,
		Meta: map[string]interface{}{
			"admin": false,
			"roles": []string{},
		},
	}

	// DMs have no member or channel permissions.
	if m.GuildID == "" {
		return actor
	}

	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		b.log.Warn().Err(err).Str("user", m.Author.ID).Msg("Failed to resolve channel permissions")
		return actor
	}
	actor.Meta["admin"] = perms&discordgo.PermissionAdministrator != 0
	actor.Meta["perms"] = perms
	if m.Member != nil {
		actor.Meta["roles"] = m.Member.Roles
	}
	return actor
}
