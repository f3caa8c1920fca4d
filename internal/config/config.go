// Package config loads runtime settings from the environment (optionally fed
// by a .env file) with viper.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Config struct {
	Port        string
	Env         Environment
	DatabaseURL string
	RabbitMQURL string
	SMTP        SMTP

	// CartSessionTTL is how long an untouched cart survives. Zero disables expiry.
	CartSessionTTL      time.Duration
	CartJanitorInterval time.Duration
}

func (c Config) IsProduction() bool { return c.Env == Production }

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", string(Development))
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "no-reply@langnghe.vn")
	v.SetDefault("CART_SESSION_TTL", "720h")
	v.SetDefault("CART_JANITOR_INTERVAL", "1h")
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Port:        v.GetString("APP_PORT"),
		Env:         Environment(v.GetString("APP_ENV")),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		SMTP: SMTP{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		CartSessionTTL:      v.GetDuration("CART_SESSION_TTL"),
		CartJanitorInterval: v.GetDuration("CART_JANITOR_INTERVAL"),
	}

	switch cfg.Env {
	case Development, Production:
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q", cfg.Env)
	}
	if cfg.CartSessionTTL < 0 {
		return Config{}, fmt.Errorf("CART_SESSION_TTL must not be negative, got %s", cfg.CartSessionTTL)
	}
	if cfg.CartSessionTTL > 0 && cfg.CartJanitorInterval <= 0 {
		return Config{}, fmt.Errorf("CART_JANITOR_INTERVAL must be positive, got %s", cfg.CartJanitorInterval)
	}
	return cfg, nil
}
