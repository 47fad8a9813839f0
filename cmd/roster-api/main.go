// ABOUTME: Entry point for the roster interactive API server
// ABOUTME: Registration, login, and bearer-token-protected candidate routes

package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/rosterhq/roster/internal/api"
	"github.com/rosterhq/roster/internal/auth"
	"github.com/rosterhq/roster/internal/config"
	"github.com/rosterhq/roster/internal/logging"
	"github.com/rosterhq/roster/internal/store"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
                 _
 _ __ ___  ___| |_ ___ _ __
| '__/ _ \/ __| __/ _ \ '__|
| | | (_) \__ \ ||  __/ |
|_|  \___/|___/\__\___|_|
`

// getConfigPath returns the path to the roster config file.
// Priority: ROSTER_CONFIG env var > XDG_CONFIG_HOME/roster/roster.yaml > ~/.config/roster/roster.yaml
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
	if len(os.Args) < 2 {
		fmt.Println("Usage: roster-api <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve    Start the interactive API server")
		fmt.Println("  init     Create a new config file with a generated signing secret")
		fmt.Println("  health   Check server health")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "health":
		err = runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.Logging)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("API:      %s\n", cfg.Server.APIAddr)
	green.Print("    ▶ ")
	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Println()

	logger.Info("starting roster-api",
		"config", configPath,
		"addr", cfg.Server.APIAddr,
	)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	verifier, err := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return fmt.Errorf("creating token verifier: %w", err)
	}

	server := api.NewServer(st, verifier, cfg.Auth.TokenTTL, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.APIAddr,
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

	// Fresh context: the signal context is already canceled.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// configTemplate is written by `roster-api init` with a generated secret.
const configTemplate = `server:
  api_addr: ":3000"
  public_addr: ":3001"

database:
  path: "%s"

auth:
  # Generated at init time. Rotating it invalidates all outstanding tokens.
  jwt_secret: "%s"
  token_ttl: "24h"

logging:
  level: "info"
  format: "text"
`

func runInit() error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	secret := make([]byte, 48)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("generating signing secret: %w", err)
	}

	dbPath := filepath.Join(filepath.Dir(configPath), "roster.db")
	content := fmt.Sprintf(configTemplate, dbPath, base64.StdEncoding.EncodeToString(secret))

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Print("✓ ")
	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Start the server with: roster-api serve")
	return nil
}

func runHealth(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := fmt.Sprintf("http://%s/health", hostportForClient(cfg.Server.APIAddr))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

// hostportForClient turns a listen address like ":3000" into a dialable one.
func hostportForClient(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
