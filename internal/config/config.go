package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full bot configuration, decoded from a TOML file with
// environment variable overrides for the secrets
type Config struct {
	Discord  DiscordConfig  `toml:"discord"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Log      LogConfig      `toml:"log"`

	// Mode is "dev" or "release", controls log output
	Mode string `toml:"mode"`
}

// DiscordConfig holds the Discord connection settings
type DiscordConfig struct {
	// Token is the bot token, also read from DISCORD_TOKEN
	Token string `toml:"token"`

	// ApplicationID for command registration, also read from APPLICATION_ID
	ApplicationID string `toml:"application_id"`

	// GuildID restricts command registration to one guild during development
	GuildID string `toml:"guild_id"`
}

// DatabaseConfig holds the SQLite settings
type DatabaseConfig struct {
	// Path is the SQLite database file path
	Path string `toml:"path"`
}

// RedisConfig holds the optional group cache settings. An empty Addr
// disables the cache entirely.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogConfig holds the zap/lumberjack settings
type LogConfig struct {
	FileName   string `toml:"file_name"`
	Level      string `toml:"level"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
}

// Load decodes the TOML file at path and applies environment overrides.
// The file may be absent as long as the required values arrive via env.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Mode: "release",
		Database: DatabaseConfig{
			Path: "sessionbot.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Discord.Token == "" {
		return nil, errors.New("discord token is required (config file or DISCORD_TOKEN)")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		cfg.Discord.Token = v
	}
	if v := os.Getenv("APPLICATION_ID"); v != "" {
		cfg.Discord.ApplicationID = v
	}
	if v := os.Getenv("GUILD_ID"); v != "" {
		cfg.Discord.GuildID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}
