package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/export"
	"github.com/jonathan/cv-tailor/internal/fetch"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/logging"
	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

// loadSettings resolves configuration with precedence flag > config file > env > defaults
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}

	fileCfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}

	cfg := fileCfg.MergeWithDefaults(config.FromEnv())
	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with every persistent flag the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = apiKeyFlag
	}
	if flags.Changed("out") {
		cfg.OutputDir = outputDirFlag
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFileFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = useBrowserFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
	if cfg.Verbose && !flags.Changed("log-level") {
		cfg.LogLevel = "debug"
	}
}

// app bundles everything a command needs to run coordinator operations
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	client   llm.Client
	notifier *notify.Manager
	coord    *workflow.Coordinator
}

// newApp wires the coordinator. console selects stderr logging; the TUI logs to file only.
func newApp(ctx context.Context, cfg config.Config, console bool) (*app, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set %s environment variable or use --api-key flag)", config.EnvAPIKey)
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Console: console})
	if err != nil {
		return nil, err
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = cfg.FetchTimeout.Std()
	pages := fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{
		CacheTTL:   cfg.PageCacheTTL.Std(),
		UseBrowser: cfg.UseBrowser,
		Options:    fetchOpts,
		Logger:     logger.Named("fetch"),
	})

	notifier := notify.NewManager(notify.WithTTL(cfg.NotificationTTL.Std()))

	printer := export.NewPDFPrinter(logger.Named("export"))

	coord := workflow.NewCoordinator(workflow.NewSession(), client, notifier,
		workflow.WithPageSource(pages),
		workflow.WithClipboard(systemClipboard(logger)),
		workflow.WithPrinter(printer),
		workflow.WithOutputDir(cfg.OutputDir),
		workflow.WithLimits(ingestion.Limits{MaxBytes: cfg.MaxUploadBytes}),
		workflow.WithLogger(logger.Named("workflow")),
	)

	return &app{cfg: cfg, logger: logger, client: client, notifier: notifier, coord: coord}, nil
}

// systemClipboard returns the OS clipboard, or an in-process one when the
// platform has no clipboard utility
func systemClipboard(logger *zap.Logger) clipboard.ReadWriter {
	cb, err := clipboard.NewSystem()
	if err != nil {
		logger.Warn("system clipboard unavailable, using in-process clipboard", zap.Error(err))
		return clipboard.NewMemory("")
	}
	return cb
}

// Close releases the client, timers and log buffers
func (a *app) Close() {
	a.notifier.Close()
	if err := a.client.Close(); err != nil {
		a.logger.Warn("failed to close LLM client", zap.Error(err))
	}
	_ = a.logger.Sync()
}
