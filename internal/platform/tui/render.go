package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// Headers returns the column titles for a vendor kind.
func Headers(kind registry.Kind) []string {
	if kind == registry.KindCounter {
		return []string{"Cracked", "Slot", "Item", "Qty"}
	}
	return []string{"Date", "Item", "Price", "Qty"}
}

// Rows flattens groups into table rows. The group label is only printed on
// the first row of each group.
func Rows(groups []stock.Group, kind registry.Kind) [][]string {
	var rows [][]string
	for _, g := range groups {
		for i, r := range g.Rows {
			label := ""
			if i == 0 {
				label = g.Label
			}
			qty := fmt.Sprintf("x%d", r.Quantity)
			if kind == registry.KindCounter {
				rows = append(rows, []string{label, r.Slot, r.Name, qty})
				continue
			}
			rows = append(rows, []string{label, r.Name, formatPrice(r.Price), qty})
		}
	}
	return rows
}

func formatPrice(p uint32) string {
	if p == 0 {
		return "-"
	}
	return fmt.Sprintf("%dg", p)
}

// RenderNotices styles vendor notices: the first line is informational,
// the rest are configuration hints.
func RenderNotices(notices []string) string {
	lines := make([]string, 0, len(notices))
	for i, n := range notices {
		if i == 0 {
			lines = append(lines, infoStyle.Render("i "+n))
			continue
		}
		lines = append(lines, warnStyle.Render("! "+n))
	}
	return strings.Join(lines, "\n")
}

// RenderTable renders groups as a bordered table for non-interactive output.
// With color disabled the result is plain ASCII suitable for pipes.
func RenderTable(groups []stock.Group, kind registry.Kind, color bool) string {
	if len(groups) == 0 {
		return "No matching stock.\n"
	}

	t := lgtable.New().
		Headers(Headers(kind)...).
		Rows(Rows(groups, kind)...)

	if color {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == lgtable.HeaderRow {
					return headerStyle.Foreground(lipgloss.Color("229"))
				}
				return cellStyle
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == lgtable.HeaderRow {
					return lipgloss.NewStyle().Padding(0, 1)
				}
				return cellStyle
			})
	}

	return t.String() + "\n"
}
