package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jwhitford/marquee/internal/catalog/omdb"
	"github.com/jwhitford/marquee/internal/config"
	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/log"
	"github.com/jwhitford/marquee/internal/store"
	"github.com/jwhitford/marquee/internal/tui"
	"github.com/jwhitford/marquee/internal/watchlist"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	catalog := omdb.NewClient(cfg.Catalog.URL, cfg.Catalog.APIKey, logger)

	st, err := store.Open(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}
	defer st.Close()

	wl := watchlist.NewStore(st, logger)

	model := tui.NewModel(catalog, wl, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for an API key on first run.
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("Marquee searches the OMDb catalog and needs an API key.")
	fmt.Println("Get a free key at https://www.omdbapi.com/apikey.aspx")
	fmt.Println()

	for {
		fmt.Print("Enter your API key: ")
		keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		apiKey := strings.TrimSpace(string(keyBytes))

		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		fmt.Print("Checking key... ")
		if err := verifyKey(cfg.Catalog.URL, apiKey, logger); err != nil {
			fmt.Printf("✗ %v\n", err)
			fmt.Println("Please check the key and try again.")
			fmt.Println()
			continue
		}
		fmt.Println("✓")

		cfg.Catalog.APIKey = apiKey
		break
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run marquee again to start the application.")

	return nil
}

// verifyKey issues a throwaway search to confirm the key is accepted.
// A no-match response still proves the key works.
func verifyKey(baseURL, apiKey string, logger *slog.Logger) error {
	client := omdb.NewClient(baseURL, apiKey, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err := client.Search(ctx, domain.SearchQuery{Text: "inception"}, 1)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
