package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
mode = "dev"

[discord]
token = "file-token"
application_id = "app-1"
guild_id = "guild-1"

[database]
path = "/tmp/bot.db"

[redis]
addr = "localhost:6379"

[log]
file_name = "bot.log"
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, "file-token", cfg.Discord.Token)
	assert.Equal(t, "app-1", cfg.Discord.ApplicationID)
	assert.Equal(t, "/tmp/bot.db", cfg.Database.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
[discord]
token = "file-token"
`)

	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("SQLITE_PATH", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.Token)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
}

func TestLoad_MissingFileWithEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.Token)
	assert.Equal(t, "sessionbot.db", cfg.Database.Path)
	assert.Equal(t, "release", cfg.Mode)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
