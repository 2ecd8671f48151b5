package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/valleyseer/internal/platform/tui"
	"github.com/vovakirdan/valleyseer/internal/registry"
)

var browseCmd = &cobra.Command{
	Use:   "browse [vendor]",
	Short: "Browse stock interactively",
	Long: `Open the interactive browser: pick a vendor, then page through its stock.

Controls:
  Up/Down     - Move through rows
  Right/N     - Next window
  Left/P      - Previous window
  /           - Filter by item name (paging is disabled while filtering)
  X           - Clear the filter
  G           - Go to a date or geode count
  Esc/B       - Back to the vendor list
  Q/Ctrl+C    - Quit

Examples:
  valleyseer browse --profile farm
  valleyseer browse cart --platform switch --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger("valleyseer")
	cat, err := loadCatalog(logger)
	if err != nil {
		exitf("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewSessionModel(cat, cfg, width, height)
	if len(args) == 1 {
		v, err := registry.Get(args[0])
		if err != nil {
			exitf("%v", err)
		}
		model = tui.NewVendorSessionModel(v, cat, cfg, width, height)
	}

	if err := tui.Run(model); err != nil {
		exitf("%v", err)
	}
}
