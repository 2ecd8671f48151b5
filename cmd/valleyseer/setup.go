package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/storage"
)

// exitf prints an error in the usual format and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the CLI logger honoring --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// flagFile collects the configuration flags that were set explicitly.
func flagFile(cmd *cobra.Command) (config.File, error) {
	var f config.File
	flags := cmd.Flags()

	if flags.Changed("platform") {
		f.Platform = config.Ptr(flagPlatform)
	}
	if flags.Changed("seed") {
		f.Seed = config.Ptr(flagSeed)
	}
	if flags.Changed("date") {
		date, err := calendar.Parse(flagDate)
		if err != nil {
			return f, fmt.Errorf("--date: %w", err)
		}
		f.Date = &date
	}
	if flags.Changed("geodes-cracked") {
		f.GeodesCracked = config.Ptr(flagGeodesCracked)
	}
	if flags.Changed("mine-level") {
		f.MineLevel = config.Ptr(flagMineLevel)
	}
	if flags.Changed("qis-crop") {
		f.QisCrop = config.Ptr(flagQisCrop)
	}
	if flags.Changed("golden-helmet") {
		f.GoldenHelmet = config.Ptr(flagGoldenHelmet)
	}
	return f, nil
}

// configFile layers the config file, the selected profile and the flags.
func configFile(cmd *cobra.Command) (config.File, error) {
	file, err := config.Load(flagConfig)
	if err != nil {
		return file, err
	}

	if flagProfile != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return file, fmt.Errorf("cannot open database: %w", err)
		}
		defer store.Close()

		p, err := store.Profile(flagProfile)
		if err != nil {
			return file, err
		}
		if p == nil {
			return file, fmt.Errorf("unknown profile %q (run 'valleyseer profile list')", flagProfile)
		}
		file = file.Merge(p.File)
	}

	flags, err := flagFile(cmd)
	if err != nil {
		return file, err
	}
	return file.Merge(flags), nil
}

// resolveConfig returns the validated configuration for a command.
func resolveConfig(cmd *cobra.Command) (config.Configuration, error) {
	file, err := configFile(cmd)
	if err != nil {
		return config.Configuration{}, err
	}
	cfg, err := file.Resolve()
	if errors.Is(err, config.ErrMissingPlatform) || errors.Is(err, config.ErrMissingSeed) {
		return cfg, fmt.Errorf("%w (use --platform and --seed, a config file or --profile)", err)
	}
	return cfg, err
}

// loadCatalog reads the catalog from --data, or from the database.
func loadCatalog(logger *log.Logger) (*catalog.Catalog, error) {
	offLimit := catalog.DefaultOffLimit()
	if flagOffLimit != "" {
		ol, err := catalog.LoadOffLimit(flagOffLimit)
		if err != nil {
			return nil, err
		}
		offLimit = ol
	}

	if flagDataDir != "" {
		cat, err := catalog.LoadDir(flagDataDir, offLimit)
		if err != nil {
			return nil, err
		}
		logger.Debug("catalog loaded from data files", "dir", flagDataDir, "objects", cat.Len(catalog.KindObject))
		return cat, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	defer store.Close()

	cat, err := store.LoadCatalog(offLimit)
	if err != nil {
		return nil, err
	}
	if cat.Empty() {
		return nil, errors.New("no game data: run 'valleyseer catalog import <dir>' or pass --data <dir>")
	}
	logger.Debug("catalog loaded from database", "db", flagDBPath, "objects", cat.Len(catalog.KindObject))
	return cat, nil
}
