package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"local"`
	Port      int    `envconfig:"PORT" default:"8080"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN string `envconfig:"SENTRY_DSN"`

	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	DB struct {
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Port         int    `envconfig:"DB_PORT" default:"5432"`
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Name         string `envconfig:"DB_NAME" default:"shop"`
		SSLMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	// fail_fast or isolate
	EventPolicy string `envconfig:"EVENT_POLICY" default:"fail_fast"`
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}

func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("cannot process config: %w", err)
	}

	if cfg.EventPolicy != "fail_fast" && cfg.EventPolicy != "isolate" {
		return nil, fmt.Errorf("invalid EVENT_POLICY %q", cfg.EventPolicy)
	}

	return &cfg, nil
}
