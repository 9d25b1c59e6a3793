package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderPagination draws "Previous  Page X of Y  Next", greying out the
// buttons that would not move the cursor.
func renderPagination(index, total, width int) string {
	prev := buttonStyle
	if index <= 1 {
		prev = buttonDisabledStyle
	}
	next := buttonStyle
	if index >= total {
		next = buttonDisabledStyle
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		prev.Render("← Previous"),
		pageLabelStyle.Render(pageLabel(index, total)),
		next.Render("Next →"),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func pageLabel(index, total int) string {
	return fmt.Sprintf("Page %d of %d", index, total)
}
