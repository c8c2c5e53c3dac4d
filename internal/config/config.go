package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the runtime configuration of the marketplace server.
type Config struct {
	AppPort       string `mapstructure:"APP_PORT" validate:"required"`
	AppEnv        string `mapstructure:"APP_ENV" validate:"required,oneof=development test production"`
	LogLevel      string `mapstructure:"LOG_LEVEL" validate:"required,oneof=trace debug info warn error"`
	DBDriver      string `mapstructure:"DB_DRIVER" validate:"required,oneof=sqlite postgres"`
	SQLitePath    string `mapstructure:"SQLITE_PATH" validate:"required_if=DBDriver sqlite"`
	DatabaseDSN   string `mapstructure:"DATABASE_DSN" validate:"required_if=DBDriver postgres"`
	BcryptCost    int    `mapstructure:"BCRYPT_COST" validate:"gte=4,lte=31"`
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL" validate:"omitempty,url"`
	RabbitMQQueue string `mapstructure:"RABBITMQ_QUEUE" validate:"required"`
}

var keys = []string{
	"APP_PORT", "APP_ENV", "LOG_LEVEL", "DB_DRIVER", "SQLITE_PATH",
	"DATABASE_DSN", "BCRYPT_COST", "RABBITMQ_URL", "RABBITMQ_QUEUE",
}

// Load reads configuration from defaults, an optional file named by
// CONFIG_FILE and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "marketplace.db")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "marketplace_events")
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so env-only values need
	// an explicit binding.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", key, err)
		}
	}

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// EventsEnabled reports whether domain events should be published.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}
