package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the dev server settings. Values come from defaults, an
// optional .env file, and environment variables, in increasing precedence;
// CLI flags may override individual fields after Load.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Store    StoreConfig
	Frontend FrontendConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level string
}

// StoreConfig points at the sqlite layout library. An empty path disables
// the library endpoints.
type StoreConfig struct {
	Path string
}

type FrontendConfig struct {
	Origin string
}

// Load reads configuration from the environment and an optional .env file
// in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ORBHAB_HOST", "127.0.0.1")
	v.SetDefault("ORBHAB_PORT", 3000)
	v.SetDefault("ORBHAB_LOG_LEVEL", "info")
	v.SetDefault("ORBHAB_STORE_PATH", "")
	v.SetDefault("ORBHAB_FRONTEND_ORIGIN", "http://localhost:5173")

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine; anything else is a real failure.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Host: v.GetString("ORBHAB_HOST"),
			Port: v.GetInt("ORBHAB_PORT"),
		},
		Log: LogConfig{
			Level: v.GetString("ORBHAB_LOG_LEVEL"),
		},
		Store: StoreConfig{
			Path: v.GetString("ORBHAB_STORE_PATH"),
		},
		Frontend: FrontendConfig{
			Origin: v.GetString("ORBHAB_FRONTEND_ORIGIN"),
		},
	}, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
