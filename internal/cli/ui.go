package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Output styling. Diagnostics go through charmbracelet/log; these styles
// cover the result lines a command prints when it finishes.
var (
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleNote  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleSpin  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleGood.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render("! " + fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleNote.Render("›") + " " + fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + styleDim.Render("→") + " " + styleValue.Render(path))
}

// printStats prints a one-line size summary for a written graph, with a
// marker telling whether the artifact came out of the cache.
func printStats(nodes, edges int, cached bool) {
	origin := styleNote.Render("fresh")
	if cached {
		origin = styleGood.Render("cached")
	}
	counts := fmt.Sprintf("%d nodes · %d edges · ", nodes, edges)
	fmt.Println("  " + styleDim.Render(counts) + origin)
}
