// Package config loads runtime settings from the environment and sets up logging.
package config

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Seed      uint64 `env:"WAR_SEED"` // 0 draws a seed from crypto/rand
	Locale    string `env:"WAR_LOCALE" envDefault:"pt-BR"`
	LogLevel  string `env:"WAR_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"WAR_LOG_PRETTY" envDefault:"true"`
	MaxTurns  int    `env:"WAR_MAX_TURNS" envDefault:"300"`
	SimGames  int    `env:"WAR_SIM_GAMES" envDefault:"0"`
}

// Locales lists the menu languages the console ships.
var Locales = []string{"pt-BR", "en"}

// CheckLocale rejects a locale the console has no texts for.
func CheckLocale(name string) error {
	if slices.Contains(Locales, name) {
		return nil
	}
	return fmt.Errorf("unsupported locale %q, want one of %v", name, Locales)
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := CheckLocale(cfg.Locale); err != nil {
		return Config{}, fmt.Errorf("WAR_LOCALE: %w", err)
	}
	if cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("WAR_MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	if cfg.SimGames < 0 {
		return Config{}, fmt.Errorf("WAR_SIM_GAMES must not be negative, got %d", cfg.SimGames)
	}
	return cfg, nil
}

// SetupLogging configures the global zerolog logger to write to w.
func SetupLogging(cfg Config, w io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
