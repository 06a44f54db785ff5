package cmd

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"ua-analyzer/internal/core"
	"ua-analyzer/internal/core/external"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	err := godotenv.Load(configPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

// LoadClassifier returns the built-in rule classifier, or a plugin-backed one
// when pluginPath is set.
func LoadClassifier(pluginPath string, level slog.Level) (core.Classifier, error) {
	if pluginPath == "" {
		slog.Info("using built-in user agent rules")
		return core.RuleClassifier{}, nil
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "analyzer-plugin",
		Output: os.Stderr,
		Level:  hclogLevel(level),
	})

	classifier, err := external.Load(pluginPath, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading classifier plugin '%s': %w", pluginPath, err)
	}

	slog.Info("using classifier plugin", "path", pluginPath)
	return classifier, nil
}

func hclogLevel(level slog.Level) hclog.Level {
	switch {
	case level <= slog.LevelDebug:
		return hclog.Debug
	case level <= slog.LevelInfo:
		return hclog.Info
	case level <= slog.LevelWarn:
		return hclog.Warn
	default:
		return hclog.Error
	}
}
