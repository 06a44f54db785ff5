package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultAddr = "[::1]:50051"

type ServerConfig struct {
	Addr            string        `env:"ANALYZER_ADDR" envDefault:"[::1]:50051"`
	HTTPAddr        string        `env:"ANALYZER_HTTP_ADDR"` // empty disables the HTTP gateway
	ShutdownTimeout time.Duration `env:"ANALYZER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	PluginPath      string        `env:"ANALYZER_PLUGIN_PATH"` // empty uses the built-in rules
	LogLevel        string        `env:"ANALYZER_LOG_LEVEL" envDefault:"info"`
}

type ClientConfig struct {
	Addr string `env:"ANALYZER_ADDR" envDefault:"[::1]:50051"`
}

func LoadServerConfig() (ServerConfig, error) {
	cfg, err := env.ParseAs[ServerConfig]()
	if err != nil {
		return ServerConfig{}, fmt.Errorf("error parsing server config: %w", err)
	}

	if cfg.Addr == "" {
		return ServerConfig{}, fmt.Errorf("ANALYZER_ADDR must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return ServerConfig{}, fmt.Errorf("ANALYZER_SHUTDOWN_TIMEOUT must be positive, got %v", cfg.ShutdownTimeout)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return ServerConfig{}, err
	}

	return cfg, nil
}

func (c ServerConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid ANALYZER_LOG_LEVEL '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

func LoadClientConfig() (ClientConfig, error) {
	cfg, err := env.ParseAs[ClientConfig]()
	if err != nil {
		return ClientConfig{}, fmt.Errorf("error parsing client config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return cfg, nil
}
