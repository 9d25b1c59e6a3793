package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(matched, loaded int, width int, searching bool, loading bool) string {
	left := fmt.Sprintf(" %d articles", loaded)
	if matched != loaded {
		left = fmt.Sprintf(" %d of %d articles", matched, loaded)
	}
	if loading {
		left = " loading..."
	}

	right := " / search  n/p page  o open  ? help  q quit "
	if searching {
		right = " esc clear  enter done "
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
