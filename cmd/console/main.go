package main

import (
	"context"
	"os"

	"github.com/keshon/textroute/internal/command"
	"github.com/keshon/textroute/internal/config"
	"github.com/keshon/textroute/internal/console"
	"github.com/keshon/textroute/internal/logging"
	"github.com/keshon/textroute/internal/router"
	"github.com/keshon/textroute/internal/rules"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logging.Setup("info", "", 0)
		fallback.Fatal().Err(err).Msg("Configuration error")
	}

	log := logging.Setup(cfg.LogLevel, cfg.LogFile, cfg.LogFileMaxMB)

	adminRule, err := rules.Compile(cfg.AdminRule)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ADMIN_RULE")
	}

	builder := router.NewBuilder()
	if err := command.Register(builder, command.Deps{AdminRule: adminRule}); err != nil {
		log.Fatal().Err(err).Msg("Command registration failed")
	}

	c := console.New(builder.Build(), cfg.Triggers, os.Stdin, os.Stdout, log)
	if err := c.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Console error")
	}
}
