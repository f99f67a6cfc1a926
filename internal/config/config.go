package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App      AppConfig      `mapstructure:"app"      validate:"required"`
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// AppConfig identifies the application in logs and the health endpoint.
type AppConfig struct {
	Name    string `mapstructure:"name"    validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Host           string        `mapstructure:"host"            validate:"required"`
	Port           int           `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	User           string        `mapstructure:"user"            validate:"required"`
	Password       string        `mapstructure:"password"        validate:"required"`
	Name           string        `mapstructure:"name"            validate:"required"`
	PoolSize       int           `mapstructure:"pool_size"       validate:"required,gt=0"`
	AcquireTimeout time.Duration `mapstructure:"acquire_timeout" validate:"required,gt=0"`
}

// URL assembles the postgres connection string from the individual settings.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
	)
}
