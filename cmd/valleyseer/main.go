// valleyseer predicts what Stardew Valley shops and geodes will offer for a
// given world seed.
//
// Usage:
//
//	valleyseer vendors                 - List vendors
//	valleyseer stock <vendor>          - Print one window of stock
//	valleyseer browse [vendor]         - Browse stock interactively
//	valleyseer serve                   - Serve the browser over SSH
//	valleyseer api                     - Serve stock as JSON over HTTP
//	valleyseer profile ...             - Manage saved configurations
//	valleyseer catalog ...             - Import or inspect game data
//	valleyseer date <date>             - Convert between date forms
//
// Global flags:
//
//	--platform <pc|switch>  - Game build to replay
//	--seed <value>          - World seed
//	--profile <name>        - Saved configuration to start from
//	--data <dir>            - Read game data files instead of the database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import vendors to register them
	_ "github.com/vovakirdan/valleyseer/internal/vendors/cart"
	_ "github.com/vovakirdan/valleyseer/internal/vendors/geodes"
	_ "github.com/vovakirdan/valleyseer/internal/vendors/joja"
	_ "github.com/vovakirdan/valleyseer/internal/vendors/krobus"
	_ "github.com/vovakirdan/valleyseer/internal/vendors/sandy"
)

var (
	// Global flags
	flagConfig        string
	flagProfile       string
	flagPlatform      string
	flagSeed          int32
	flagDate          string
	flagGeodesCracked uint16
	flagMineLevel     uint8
	flagQisCrop       bool
	flagGoldenHelmet  bool
	flagDBPath        string
	flagDataDir       string
	flagOffLimit      string
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "valleyseer",
	Short: "Predict Stardew Valley shop stock and geode contents",
	Long: `valleyseer replays the game's random number generator to show what the
Traveling Cart, Krobus, Sandy, Joja and geodes will offer for a world seed.

Configuration is layered: config file, then --profile, then flags.
Platform and seed are required.

Available commands:
  vendors  - Show all vendors
  stock    - Print one window of a vendor's stock
  browse   - Interactive browser
  serve    - SSH server for the browser
  api      - HTTP JSON API
  profile  - Save, list, show and delete configurations
  catalog  - Import game data into the database
  date     - Convert dates

Examples:
  valleyseer vendors
  valleyseer stock cart --platform pc --seed 123456789
  valleyseer stock krobus --profile farm --filter "gem"
  valleyseer browse --profile farm
  valleyseer date 1 summer 1`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config file (YAML, or TOML with a .toml extension)")
	pf.StringVar(&flagProfile, "profile", "", "Saved profile to use")
	pf.StringVar(&flagPlatform, "platform", "", "Platform: pc or switch")
	pf.Int32Var(&flagSeed, "seed", 0, "World seed")
	pf.StringVar(&flagDate, "date", "", `Current date: index or "year season day"`)
	pf.Uint16Var(&flagGeodesCracked, "geodes-cracked", 0, "Number of geodes cracked so far")
	pf.Uint8Var(&flagMineLevel, "mine-level", 0, "Deepest mine level reached (default 120)")
	pf.BoolVar(&flagQisCrop, "qis-crop", false, "Qi's crop quest is active")
	pf.BoolVar(&flagGoldenHelmet, "golden-helmet", false, "Golden helmet already found (default true)")
	pf.StringVar(&flagDBPath, "db", "~/.valleyseer/valleyseer.db", "Path to database")
	pf.StringVar(&flagDataDir, "data", "", "Directory with unpacked game data files")
	pf.StringVar(&flagOffLimit, "offlimit", "", "YAML file overriding the off-limit item lists")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(vendorsCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(dateCmd)
}
