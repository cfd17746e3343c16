package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"TrackMyCash"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"trackmycash"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Auth struct {
		// SingleUser disables Google sign-in and scopes everything to
		// DefaultOwner. Multi-user vs single-user is a flag, not a fork.
		SingleUser     bool   `envconfig:"SINGLE_USER" default:"false"`
		DefaultOwner   string `envconfig:"DEFAULT_OWNER" default:"local"`
		GoogleClientID string `envconfig:"GOOGLE_CLIENT_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if !cfg.Auth.SingleUser && cfg.Auth.GoogleClientID == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID is required unless SINGLE_USER=true")
	}

	return &cfg, nil
}
