package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables (prefixed STOREFRONT_, with dots
// replaced by underscores, e.g. STOREFRONT_DATABASE_HOST) take precedence
// over values from config files, which take precedence over defaults.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every configuration key.
// Every key must have a default so AutomaticEnv can bind it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Storefront API")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "storefront")
	v.SetDefault("database.pool_size", 5)
	v.SetDefault("database.acquire_timeout", "3s")
}
