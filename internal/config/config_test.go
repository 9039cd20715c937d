package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.DND5E.Timeout)
	assert.False(t, cfg.DND5E.Enabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FORGE_HTTP_ADDR", ":9000")
	t.Setenv("FORGE_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("FORGE_LOG_FORMAT", "json")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("FORGE_SESSION_TTL", "90m")
	t.Setenv("FORGE_ARCHIVE_PATH", "/tmp/forge.db")
	t.Setenv("DND5E_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 90*time.Minute, cfg.Redis.SessionTTL)
	assert.Equal(t, "/tmp/forge.db", cfg.Archive.Path)
	assert.True(t, cfg.DND5E.Enabled)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("FORGE_SESSION_TTL", "soon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestDiscordConfig_Validate(t *testing.T) {
	assert.Error(t, config.DiscordConfig{}.Validate())
	assert.Error(t, config.DiscordConfig{Token: "t"}.Validate())
	assert.NoError(t, config.DiscordConfig{Token: "t", AppID: "app"}.Validate())
}
