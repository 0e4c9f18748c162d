// Package config loads flashstack settings from environment variables and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"flashstack/internal/deck"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FLASHSTACK_LOG_LEVEL.
const EnvPrefix = "FLASHSTACK"

// ErrBlankSeedCard is returned when a configured seed card has an empty field.
var ErrBlankSeedCard = errors.New("seed card needs both question and answer")

type (
	Config struct {
		Log
		Deck
	}

	Log struct {
		Level slog.Level
		File  string // empty discards log output
	}

	Deck struct {
		// Seed replaces deck.DefaultSeed when the config file lists cards.
		Seed []deck.Draft
	}
)

// seedCard mirrors one entry of the `cards` list in the config file.
type seedCard struct {
	Question string `mapstructure:"question"`
	Answer   string `mapstructure:"answer"`
}

// Load reads configuration. path may be empty, in which case FLASHSTACK_CONFIG
// is consulted; when neither is set only env vars and defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("config", "")

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := ParseLogLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, err
	}

	seed, err := loadSeed(v)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Log: Log{
			Level: level,
			File:  v.GetString("log_file"),
		},
		Deck: Deck{
			Seed: seed,
		},
	}, nil
}

// SeedOrDefault returns the configured seed, or deck.DefaultSeed when none is set.
func (c Config) SeedOrDefault() []deck.Draft {
	if c.Deck.Seed == nil {
		return deck.DefaultSeed
	}
	return c.Deck.Seed
}

func loadSeed(v *viper.Viper) ([]deck.Draft, error) {
	if !v.IsSet("cards") {
		return nil, nil
	}
	var cards []seedCard
	if err := v.UnmarshalKey("cards", &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	seed := make([]deck.Draft, 0, len(cards))
	for i, c := range cards {
		d := deck.Draft{Question: c.Question, Answer: c.Answer}
		if !d.Valid() {
			return nil, fmt.Errorf("cards[%d]: %w", i, ErrBlankSeedCard)
		}
		seed = append(seed, d)
	}
	return seed, nil
}

// ParseLogLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
