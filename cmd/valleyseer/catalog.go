package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valleyseer/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import or inspect game data",
	Long: `Vendors look items up in a catalog built from the game's data files.
Unpack ObjectInformation, BigCraftablesInformation, Furniture,
ClothingInformation and hats to JSON in one directory, then import it once.

Examples:
  valleyseer catalog import ./Content/Data
  valleyseer catalog stats`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import game data files into the database",
	Args:  cobra.ExactArgs(1),
	Run:   runCatalogImport,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what the imported catalog contains",
	Args:  cobra.NoArgs,
	Run:   runCatalogStats,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
}

func runCatalogImport(_ *cobra.Command, args []string) {
	logger := newLogger("valleyseer")
	dir := args[0]

	records, err := catalog.ReadDir(dir)
	if err != nil {
		exitf("%v", err)
	}

	// Validate before touching the database.
	if err := catalog.NewBuilder().AddAll(records); err != nil {
		exitf("%v", err)
	}

	store := openStore()
	defer store.Close()

	source, err := filepath.Abs(dir)
	if err != nil {
		source = dir
	}
	n, err := store.ImportCatalog(source, records)
	if err != nil {
		exitf("%v", err)
	}
	logger.Info("catalog imported", "source", source, "entries", n)
}

func runCatalogStats(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	stats, err := store.GetCatalogStats()
	if err != nil {
		exitf("%v", err)
	}

	if stats.Source == "" {
		fmt.Println("No catalog imported yet.")
		fmt.Println()
		fmt.Println("Run 'valleyseer catalog import <dir>' to import the game data.")
		return
	}

	fmt.Printf("Source:   %s\n", stats.Source)
	fmt.Printf("Imported: %s\n", stats.ImportedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	for _, kind := range catalog.Kinds {
		fmt.Printf("  %-16s %d\n", kind, stats.Counts[kind])
	}
}
