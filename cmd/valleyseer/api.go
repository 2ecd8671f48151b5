package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/valleyseer/internal/platform/httpapi"
	"github.com/vovakirdan/valleyseer/internal/storage"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP JSON API",
	Long: `Serve vendor stock as JSON.

Endpoints:
  GET /api/health
  GET /api/vendors
  GET /api/vendors/:id
  GET /api/vendors/:id/stock?start=&filter=&profile=&platform=&seed=...
  GET /api/calendar/:date
  GET /api/profiles

Configuration given to this command is the default for every request;
the profile and configuration query parameters override it.

Examples:
  valleyseer api --http :8080
  curl 'localhost:8080/api/vendors/cart/stock?platform=pc&seed=42&filter=rare+seed'`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
}

func runAPI(cmd *cobra.Command, _ []string) {
	defaults, err := configFile(cmd)
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger("valleyseer-api")
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

	if flagLogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := httpapi.New(httpapi.Config{
		Address:  flagHTTPAddr,
		Catalog:  cat,
		Defaults: defaults,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting valleyseer API on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server: %v", err)
	}
}
