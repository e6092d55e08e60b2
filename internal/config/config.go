package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceGenerated = "generated"
	SourceXLSX      = "xlsx"
	SourcePostgres  = "postgres"
)

type Config struct {
	App struct {
		Env  string
		Seed int64
	} `mapstructure:"app"`

	HTTP struct {
		Addr       string
		BaseURL    string        `mapstructure:"base_url"`
		SessionTTL time.Duration `mapstructure:"session_ttl"`
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Catalog struct {
		Source string
		Path   string
	} `mapstructure:"catalog"`

	Postgres struct {
		DSN           string
		Migrations    string
		RunMigrations bool `mapstructure:"run_migrations"`
	} `mapstructure:"postgres"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	Alerts struct {
		Enabled bool
	} `mapstructure:"alerts"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.seed", 1)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.base_url", "http://localhost:8080")
	v.SetDefault("http.session_ttl", "8h")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("catalog.source", SourceGenerated)
	v.SetDefault("postgres.migrations", "migrations")
	v.SetDefault("alerts.enabled", false)
}

// Load reads path (optional when empty) and applies APP_* environment overrides,
// e.g. APP_HTTP_ADDR or APP_TELEGRAM_TOKEN.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"postgres.dsn", "catalog.path", "telegram.token", "telegram.admin_chat_id", "postgres.run_migrations"} {
		_ = v.BindEnv(key)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceGenerated:
	case SourceXLSX:
		if c.Catalog.Path == "" {
			return errors.New("config: catalog.path is required for xlsx source")
		}
	case SourcePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("config: postgres.dsn is required for postgres source")
		}
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}
	if c.HTTP.SessionTTL <= 0 {
		return errors.New("config: http.session_ttl must be positive")
	}
	if c.Alerts.Enabled && c.Telegram.Token == "" {
		return errors.New("config: telegram.token is required when alerts are enabled")
	}
	return nil
}
