package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valleyseer/internal/platform/tui"
	"github.com/vovakirdan/valleyseer/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that serves the interactive browser.

Each connection is configured from the server's config file and flags,
overlaid with the saved profile named after the SSH user, if one exists.
A connection that ends up without a platform or seed is refused.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.valleyseer/host_key

Examples:
  valleyseer serve                           # Listen on :23234 with auto-generated key
  valleyseer serve --ssh :2222               # Listen on port 2222
  valleyseer serve --platform pc --seed 42   # Same world for every user

Users can connect with:
  ssh <profile>@localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	defaults, err := configFile(cmd)
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger("valleyseer-ssh")
	cat, err := loadCatalog(logger)
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, profiles are disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Catalog:     cat,
		Defaults:    defaults,
		Store:       store,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting valleyseer SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server: %v", err)
	}
}
