// Package discord adapts the Discord gateway to the routing engine: it
// turns MessageCreate events into dispatches and reports outcomes back to
// the channel (or per DM, depending on the help mode).
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/keshon/textroute/internal/config"
	"github.com/keshon/textroute/internal/router"
	"github.com/keshon/textroute/internal/storage"
)

// Payload is the opaque Data handed to handlers dispatched from Discord.
type Payload struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	rt      *router.Router
}

// Reply sends text to the channel the message came from.
func (p *Payload) Reply(inv *router.Invocation, text string) error {
	_, err := p.Session.ChannelMessageSend(inv.Message.ChannelID, text)
	return err
}

// Router exposes the routing snapshot for listing commands.
func (p *Payload) Router() *router.Router {
	return p.rt
}

// Bot is the Discord runtime around one dispatcher.
type Bot struct {
	dg    *discordgo.Session
	disp  *router.Dispatcher
	rt    *router.Router
	store *storage.Storage
	cfg   *config.Config
	log   zerolog.Logger
}

// NewBot wires a built router to a Discord session configuration. Run
// opens the gateway.
func NewBot(cfg *config.Config, rt *router.Router, store *storage.Storage, log zerolog.Logger) *Bot {
	b := &Bot{
		rt:    rt,
		store: store,
		cfg:   cfg,
		log:   log.With().Str("component", "discord").Logger(),
	}
	b.disp = router.NewDispatcher(rt, router.Options{
		Triggers: cfg.Triggers,
		SelfID:   b.selfID,
		Notify:   b.onDispatchEvent,
	})
	return b
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("Shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Str("triggers", b.cfg.Triggers).
		Msg("Bot is running")
}

// selfID reports the bot's current identity; read fresh per message so a
// reconnect under a different user cannot confuse the self-check.
func (b *Bot) selfID() string {
	if b.dg == nil || b.dg.State == nil || b.dg.State.User == nil {
		return ""
	}
	return b.dg.State.User.ID
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	msg := router.Message{
		ID:         uuid.NewString(),
		Text:       m.Content,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		ChannelID:  m.ChannelID,
		GuildID:    m.GuildID,
	}

	b.disp.HandleMessage(context.Background(), msg, b.actorFor(s, m), &Payload{
		Session: s,
		Event:   m,
		rt:      b.rt,
	})
}
