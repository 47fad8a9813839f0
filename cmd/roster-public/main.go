// ABOUTME: Entry point for the roster public API server
// ABOUTME: Read-only profile and candidate routes gated by the X-API-Key header

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/rosterhq/roster/internal/config"
	"github.com/rosterhq/roster/internal/logging"
	"github.com/rosterhq/roster/internal/publicapi"
	"github.com/rosterhq/roster/internal/store"
)

// Version is set by goreleaser at build time.
var version = "dev"

// getConfigPath returns the path to the roster config file, shared with roster-api.
func getConfigPath() string {
	if envPath := os.Getenv("ROSTER_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "roster.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "roster", "roster.yaml")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.Logging)

	gray := color.New(color.FgHiBlack)
	gray.Printf("roster-public %s\n", version)

	green := color.New(color.FgGreen)
	green.Print("▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("▶ ")
	fmt.Printf("Public:   %s\n", cfg.Server.PublicAddr)
	fmt.Println()

	logger.Info("starting roster-public",
		"config", configPath,
		"addr", cfg.Server.PublicAddr,
	)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	server := publicapi.NewServer(st, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.PublicAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
