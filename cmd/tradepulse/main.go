package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"tradepulse/internal/ai"
	"tradepulse/internal/config"
	"tradepulse/internal/feed"
	"tradepulse/internal/market"
	"tradepulse/internal/session"
	"tradepulse/internal/store"
	"tradepulse/internal/tui"
	"tradepulse/internal/util"
)

func main() {
	cfgPath := "config/tradepulse.yaml"
	if p := os.Getenv("TRADEPULSE_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "creating data dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "creating db dir: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file so they do not interleave with the terminal UI.
	logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := util.NewLogger(logFile, cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	kv, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	ctx := context.Background()

	// The client stays usable without a configured key: the chat degrades
	// to its fallback reply instead of refusing to start.
	var analyst ai.Analyst
	if ga, err := ai.NewGeminiAnalyst(ctx, cfg.AI.APIKey, cfg.AI.Model, logger); err != nil {
		if !errors.Is(err, ai.ErrNoAPIKey) {
			fmt.Fprintf(os.Stderr, "creating analyst: %v\n", err)
			os.Exit(1)
		}
		logger.Warn("no API key configured, chat replies will use the fallback")
	} else {
		analyst = ga
	}

	sessions := session.NewStore(kv, logger)
	user, err := sessions.Restore()
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		logger.Warn("session restore", "error", err)
	}
	if user != nil {
		logger.Info("session restored", "user_id", user.ID, "username", user.Username)
	}

	m := tui.New(sessions, feed.NewSeededStore(), market.NewCatalog(), analyst, user, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "running program: %v\n", err)
		os.Exit(1)
	}
}
