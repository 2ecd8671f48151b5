package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valleyseer/internal/registry"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List all vendors",
	Long:  `Shows every vendor whose stock can be predicted.`,
	Run:   runVendors,
}

func runVendors(cmd *cobra.Command, args []string) {
	vendors := registry.List()

	if len(vendors) == 0 {
		fmt.Println("No vendors available.")
		return
	}

	fmt.Println("Available vendors:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range vendors {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Indexed by")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "----------")

	for _, v := range vendors {
		by := "date"
		if v.Kind == registry.KindCounter {
			by = "geodes cracked"
		}
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, v.ID, v.Title, by)
	}

	fmt.Println()
	fmt.Println("Run 'valleyseer stock <id>' to see a vendor's stock.")
}
