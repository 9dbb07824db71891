package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/animewatch/internal/adapter"
	"github.com/mmcdole/animewatch/internal/store"
	"github.com/mmcdole/animewatch/internal/tui"
	"github.com/mmcdole/animewatch/internal/tui/styles"
	"github.com/mmcdole/animewatch/internal/watchlist"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		dataPath    string
		backend     string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&dataPath, "data", "", "watchlist file (overrides config)")
	flag.StringVar(&backend, "backend", "", "storage backend: json, bolt or sqlite (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("animewatch %s\n", Version)
		return
	}

	if err := run(dataPath, backend); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataPath, backend string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("animewatch needs an interactive terminal")
	}

	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataPath != "" {
		cfg.Store.Path = adapter.ExpandHome(dataPath)
	}
	if backend != "" {
		cfg.Store.Backend = backend
	}

	// Setup logger
	logger, logFile, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting animewatch", "version", Version, "backend", cfg.Store.Backend, "path", cfg.Store.Path)

	s, err := store.Open(store.Backend(cfg.Store.Backend), cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open watchlist store: %w", err)
	}

	list := watchlist.New(s, logger)
	defer list.Close()

	appearance := styles.Appearance{Dark: cfg.UI.DarkMode, Scale: cfg.UI.Scale}
	model := tui.NewModel(list, appearance, cfg.UI.ShowDetails)

	// A bad data file starts an empty list; tell the user before they overwrite it
	if _, err := list.Load(); err != nil {
		model = model.WithStartupWarning("Could not read your saved watchlist; starting empty. Adding a show will replace it.")
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "shows", list.Len())

	final, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	// Remember appearance for the next session
	if m, ok := final.(tui.Model); ok {
		if err := saveAppearance(m); err != nil {
			logger.Warn("failed to save appearance", "error", err)
		}
	}

	logger.Info("shutting down")
	return nil
}

// saveAppearance writes the UI settings back without persisting flag overrides
func saveAppearance(m tui.Model) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return err
	}
	cfg.UI.DarkMode = m.Appearance.Dark
	cfg.UI.Scale = m.Appearance.Scale
	cfg.UI.ShowDetails = m.ShowDetails
	return adapter.SaveConfig(cfg)
}
