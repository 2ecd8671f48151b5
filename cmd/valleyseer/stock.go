package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/valleyseer/internal/platform/tui"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

var (
	flagStart   string
	flagFilter  string
	flagJSON    bool
	flagNoColor bool
)

var stockCmd = &cobra.Command{
	Use:   "stock <vendor>",
	Short: "Print one window of a vendor's stock",
	Long: `Print the stock of a vendor for one window of dates (or geode counts).

Without a filter a window covers a fixed number of days. With a filter the
search looks much further ahead and stops after the first few matching days.
Filters match item names case-insensitively as substrings. Prefix a filter
with "glob:" to match the whole name against a glob (*, ? and [ ]).

Examples:
  valleyseer stock cart --platform pc --seed 123456789
  valleyseer stock cart --start "1 fall 1" --filter "rare seed"
  valleyseer stock krobus --filter "glob:*gem*"
  valleyseer stock geodes --geodes-cracked 40 --mine-level 80
  valleyseer stock joja --json`,
	Args: cobra.ExactArgs(1),
	Run:  runStock,
}

func init() {
	stockCmd.Flags().StringVar(&flagStart, "start", "", "First date or geode count (default: --date or --geodes-cracked)")
	stockCmd.Flags().StringVar(&flagFilter, "filter", "", "Only show items whose name matches")
	stockCmd.Flags().BoolVar(&flagJSON, "json", false, "Print JSON instead of a table")
	stockCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")
}

// stockOutput is the JSON form of the command output.
type stockOutput struct {
	Vendor  registry.VendorInfo `json:"vendor"`
	Start   int32               `json:"start"`
	Notices []string            `json:"notices"`
	Groups  []stock.Group       `json:"groups"`
}

func runStock(cmd *cobra.Command, args []string) {
	v, err := registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'valleyseer vendors' to see available vendors.")
		os.Exit(1)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		exitf("%v", err)
	}

	filter, err := stock.NewFilter(flagFilter)
	if err != nil {
		exitf("--filter: %v", err)
	}

	start := registry.DefaultStart(v, cfg)
	if flagStart != "" {
		start, err = registry.ParseStart(v.Kind(), flagStart)
		if err != nil {
			exitf("--start: %v", err)
		}
	}

	logger := newLogger("valleyseer")
	cat, err := loadCatalog(logger)
	if err != nil {
		exitf("%v", err)
	}

	groups, err := v.Stock(cat, stock.Query{Config: cfg, Start: start, Filter: filter})
	if err != nil {
		exitf("%v", err)
	}

	if flagJSON {
		if groups == nil {
			groups = []stock.Group{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stockOutput{
			Vendor:  registry.Info(v),
			Start:   start,
			Notices: v.Notices(cfg),
			Groups:  groups,
		}); err != nil {
			exitf("%v", err)
		}
		return
	}

	color := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Printf("%s (%s, seed %d)\n", v.Title(), cfg.Platform, cfg.Seed)
	if color {
		fmt.Println(tui.RenderNotices(v.Notices(cfg)))
	} else {
		for _, n := range v.Notices(cfg) {
			fmt.Println("  " + n)
		}
	}
	fmt.Println()
	fmt.Print(tui.RenderTable(groups, v.Kind(), color))
}
