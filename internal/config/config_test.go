package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "!", cfg.Triggers)
	assert.Equal(t, HelpPublic, cfg.HelpMode)
	assert.Equal(t, "actor.admin", cfg.AdminRule)
	assert.Equal(t, "datastore.json", cfg.StoragePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("COMMAND_TRIGGERS", "!.")
	t.Setenv("HELP_MODE", "private")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "!.", cfg.Triggers)
	assert.Equal(t, HelpPrivate, cfg.HelpMode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewRejectsInvalidHelpMode(t *testing.T) {
	t.Setenv("HELP_MODE", "loud")

	_, err := New()
	assert.Error(t, err)
}
