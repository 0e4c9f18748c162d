package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"flashstack/internal/config"
	"flashstack/internal/deck"
	"flashstack/internal/trace"
	"flashstack/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// options holds command-line overrides of the loaded configuration.
type options struct {
	configPath string
	logFile    string
	logLevel   string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a config file (yaml, toml or json); overrides FLASHSTACK_CONFIG")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file; overrides FLASHSTACK_LOG_FILE")
	flag.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error; overrides FLASHSTACK_LOG_LEVEL")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: flashstack [flags]\n\n")
		fmt.Fprintf(os.Stderr, "flashstack is a terminal flashcard viewer: page through cards,\n")
		fmt.Fprintf(os.Stderr, "flip them, add new ones and delete old ones.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

// loadConfig applies flag overrides on top of config.Load.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		level, err := config.ParseLogLevel(opts.logLevel)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Log.Level = level
	}
	return cfg, nil
}

// newLogger writes to cfg.File, or nowhere: the TUI owns stdout and stderr.
func newLogger(cfg config.Log) (logger *slog.Logger, closeFn func() error, err error) {
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level})), f.Close, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx := context.Background()
	traceCfg := trace.ConfigFromEnv()
	provider, err := trace.Setup(ctx, traceCfg)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		provider, err = trace.Setup(ctx, trace.Config{ServiceName: traceCfg.ServiceName})
		if err != nil {
			return err
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "error", err)
		}
	}()

	tracing := trace.NewTracingObserver(provider.Tracer())
	defer tracing.End()

	seed := cfg.SeedOrDefault()
	store := deck.New(seed, deck.WithObserver(deck.NewMultiObserver(
		deck.NewLogObserver(logger),
		tracing,
	)))
	logger.Info("session start", "cards", store.Len(), "otlp", provider.Exporting())

	p := tea.NewProgram(ui.NewAppModel(store).AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("session end", "cards", store.Len())
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "flashstack: %v\n", err)
		os.Exit(1)
	}
}
