// cmd/smslogs/main.go
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rusenback/smslogs/internal/api"
	"github.com/rusenback/smslogs/internal/config"
	"github.com/rusenback/smslogs/internal/i18n"
	"github.com/rusenback/smslogs/internal/logging"
	"github.com/rusenback/smslogs/internal/storage"
	"github.com/rusenback/smslogs/internal/tui"
)

// flags override values from the config file and environment
type flags struct {
	configPath string
	baseURL    string
	token      string
	lang       string
	logLevel   string
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "smslogs",
		Short:         "Browse SMS logs received by the payments backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultPath(), "config file")
	pf.StringVar(&f.baseURL, "base-url", "", "API base URL (overrides SMSLOGS_API_BASE_URL)")
	pf.StringVar(&f.token, "token", "", "API bearer token")
	pf.StringVar(&f.lang, "lang", "", "display language (en, fi)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", "log file path")

	root.AddCommand(newHistoryCmd(f))
	return root
}

// load resolves the configuration once; flags win over env and file
func (f *flags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.baseURL != "" {
		cfg.API.BaseURL = config.NormalizeBaseURL(f.baseURL)
	}
	if f.token != "" {
		cfg.API.Token = f.token
	}
	if f.lang != "" {
		cfg.UI.Language = f.lang
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer closer.Close()

	// Create storage
	var store *storage.Storage
	if !cfg.Storage.Disabled {
		store, err = storage.NewStorage(cfg.Storage.Path, storage.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()
	}

	// Create API client
	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	}, api.WithLogger(logger))

	logger.WithField("base_url", cfg.API.BaseURL).Info("starting smslogs")

	// Create TUI model
	m := tui.NewModel(client, store, tui.Options{
		Translator: i18n.New(cfg.UI.Language),
		Logger:     logger,
		Clipboard:  tui.NewOSC52Clipboard(os.Stderr),
		CopiedFor:  cfg.UI.CopiedFor,
		ToastFor:   cfg.UI.ToastFor,
	})

	// Start TUI
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
