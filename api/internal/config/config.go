package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BFHL"

type Config struct {
	Server   Server   `mapstructure:"server"`
	Identity Identity `mapstructure:"identity"`
	Client   Client   `mapstructure:"client"`
	Telegram Telegram `mapstructure:"telegram"`
	Log      Log      `mapstructure:"log"`
}

type Server struct {
	Port            string        `mapstructure:"port"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Identity is echoed back in every classifier response.
type Identity struct {
	UserID     string `mapstructure:"user_id"`
	Email      string `mapstructure:"email"`
	RollNumber string `mapstructure:"roll_number"`
}

type Client struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	// WebhookURL switches the bot from long polling to webhook mode.
	WebhookURL string `mapstructure:"webhook_url"`
	// HealthPort is the bot's own /healthz (and webhook) listener.
	HealthPort string `mapstructure:"health_port"`
}

type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.max_body_bytes", 10<<20)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("identity.user_id", "john_doe_17091999")
	v.SetDefault("identity.email", "john@xyz.com")
	v.SetDefault("identity.roll_number", "ABCD123")

	v.SetDefault("client.base_url", "http://localhost:8000")
	v.SetDefault("client.timeout", "30s")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.webhook_url", "")
	v.SetDefault("telegram.health_port", "8001")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads defaults, then the optional YAML file at path, then BFHL_* env vars.
// An empty path means "defaults and env only"; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if errors.As(err, &nf) || errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// platform PORT wins, same as the deployment scripts expect
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Server.Port = p
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port is empty")
	}
	if strings.TrimSpace(c.Telegram.HealthPort) == "" {
		return errors.New("telegram.health_port is empty")
	}
	if strings.TrimSpace(c.Identity.UserID) == "" {
		return errors.New("identity.user_id is empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Server.Port
}

// BotAddr is the listen address for the bot's HTTP server. PORT does not
// apply here, so the bot and the classifier can share a host with defaults.
func (c *Config) BotAddr() string {
	return "0.0.0.0:" + c.Telegram.HealthPort
}

// RequireBotToken fails when the Telegram token is missing.
func (c *Config) RequireBotToken() (string, error) {
	tok := strings.TrimSpace(c.Telegram.BotToken)
	if tok == "" {
		return "", fmt.Errorf("missing required env %s_TELEGRAM_BOT_TOKEN", envPrefix)
	}
	return tok, nil
}
