package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, Identity{
		UserID:     "john_doe_17091999",
		Email:      "john@xyz.com",
		RollNumber: "ABCD123",
	}, cfg.Identity)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "8001", cfg.Telegram.HealthPort)
	assert.NotEqual(t, cfg.Addr(), cfg.BotAddr())
}

func TestBotAddrIgnoresPlatformPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BFHL_TELEGRAM_HEALTH_PORT", "9001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, "0.0.0.0:9001", cfg.BotAddr())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	yamlContent := []byte(`
server:
  port: "9100"
identity:
  user_id: "jane_roe_01012000"
  email: "jane@example.com"
client:
  timeout: "5s"
`)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, yamlContent, 0o644))

	t.Setenv("PORT", "")
	t.Setenv("BFHL_IDENTITY_ROLL_NUMBER", "ZX9")
	t.Setenv("BFHL_IDENTITY_EMAIL", "env@example.com")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "jane_roe_01012000", cfg.Identity.UserID)
	// env > file > default
	assert.Equal(t, "env@example.com", cfg.Identity.Email)
	assert.Equal(t, "ZX9", cfg.Identity.RollNumber)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
}

func TestLoadPlatformPortWins(t *testing.T) {
	t.Setenv("BFHL_SERVER_PORT", "9000")
	t.Setenv("PORT", "7777")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:7777", cfg.Addr())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsEmptyUserID(t *testing.T) {
	t.Setenv("PORT", "")
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("identity:\n  user_id: \"\"\n"), 0o644))

	_, err := Load(tmpFile)
	require.ErrorContains(t, err, "identity.user_id")
}

func TestRequireBotToken(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.RequireBotToken()
	require.ErrorContains(t, err, "BFHL_TELEGRAM_BOT_TOKEN")

	cfg.Telegram.BotToken = " 123:abc "
	tok, err := cfg.RequireBotToken()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", tok)
}
