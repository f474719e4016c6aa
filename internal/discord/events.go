package discord

import (
	"time"

	"github.com/keshon/textroute/internal/config"
	"github.com/keshon/textroute/internal/router"
	"github.com/keshon/textroute/internal/storage"
)

// onDispatchEvent receives every routing outcome: it logs, records usage
// history on successful dispatches, and reports failures back to the user
// according to the help mode.
func (b *Bot) onDispatchEvent(ev router.Event) {
	log := b.log.With().
		Str("msg", ev.Message.ID).
		Str("author", ev.Message.AuthorName).
		Logger()

	switch ev.Kind {
	case router.EventDispatch:
		log.Info().Str("command", ev.Command.Path()).Msg("Dispatching command")
		b.recordUsage(ev)

	case router.EventUnknownCommand:
		log.Debug().Str("text", ev.Message.Text).Msg("Unknown command")
		b.report(ev, "Unknown command.")

	case router.EventBadArgCount:
		log.Debug().Str("command", ev.Command.Path()).Msg("Bad argument count")
		b.report(ev, "Usage: `"+ev.Command.Usage()+"`")

	case router.EventBadPermissions:
		log.Info().Str("command", ev.Command.Path()).Str("reason", ev.Reason).Msg("Permission denied")
		reason := ev.Reason
		if reason == "" {
			reason = "You are not allowed to run this command."
		}
		b.report(ev, reason)

	case router.EventException:
		log.Error().Err(ev.Err).Str("command", ev.Command.Path()).Msg("Command failed")
		b.report(ev, "Something went wrong running that command.")
	}
}

func (b *Bot) recordUsage(ev router.Event) {
	if b.store == nil {
		return
	}
	err := b.store.AppendCommandRecord(ev.Message.GuildID, storage.CommandRecord{
		ChannelID: ev.Message.ChannelID,
		UserID:    ev.Message.AuthorID,
		Username:  ev.Message.AuthorName,
		Command:   ev.Command.Path(),
		Datetime:  time.Now(),
	})
	if err != nil {
		b.log.Warn().Err(err).Msg("Failed to record command usage")
	}
}

// report answers a failed dispatch. Disabled help mode keeps the bot
// silent; private mode answers per DM instead of in the channel.
func (b *Bot) report(ev router.Event, text string) {
	if b.cfg.HelpMode == config.HelpDisabled || b.dg == nil {
		return
	}

	channelID := ev.Message.ChannelID
	if b.cfg.HelpMode == config.HelpPrivate {
		ch, err := b.dg.UserChannelCreate(ev.Message.AuthorID)
		if err != nil {
			b.log.Warn().Err(err).Msg("Failed to open DM channel")
			return
		}
		channelID = ch.ID
	}

	if _, err := b.dg.ChannelMessageSend(channelID, text); err != nil {
		b.log.Warn().Err(err).Msg("Failed to send report")
	}
}
