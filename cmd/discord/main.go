package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/textroute/internal/command"
	"github.com/keshon/textroute/internal/config"
	"github.com/keshon/textroute/internal/discord"
	"github.com/keshon/textroute/internal/logging"
	"github.com/keshon/textroute/internal/router"
	"github.com/keshon/textroute/internal/rules"
	"github.com/keshon/textroute/internal/storage"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logging.Setup("info", "", 0)
		fallback.Fatal().Err(err).Msg("Configuration error")
	}

	log := logging.Setup(cfg.LogLevel, cfg.LogFile, cfg.LogFileMaxMB)
	log.Info().Msg("Starting textroute bot...")

	if cfg.DiscordToken == "" {
		log.Fatal().Msg("DISCORD_TOKEN is not set")
	}

	adminRule, err := rules.Compile(cfg.AdminRule)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ADMIN_RULE")
	}

	builder := router.NewBuilder()
	if err := command.Register(builder, command.Deps{AdminRule: adminRule}); err != nil {
		log.Fatal().Err(err).Msg("Command registration failed")
	}
	rt := builder.Build()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Storage error")
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.NewBot(cfg, rt, store, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("Shutting down...")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Discord bot error")
		}
		cancel()
	}

	log.Info().Msg("Discord bot exited cleanly")
}
