package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valleyseer/internal/calendar"
)

var dateCmd = &cobra.Command{
	Use:   "date <index | year season day>",
	Short: "Convert between date indexes and calendar dates",
	Long: `Dates are counted from 1 (Monday Spring 1, Year 1). Vendors and --date
accept either form.

Examples:
  valleyseer date 29
  valleyseer date 2 winter 15`,
	Args: cobra.RangeArgs(1, 3),
	Run:  runDate,
}

func runDate(_ *cobra.Command, args []string) {
	date, err := calendar.Parse(strings.Join(args, " "))
	if err != nil {
		exitf("%v", err)
	}
	fmt.Printf("%d  %s\n", date, calendar.Format(date))
}
