package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Chackochi310/News/internal/news"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func renderListItem(a news.Article, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-4))
	}

	meta := "  " + itemSourceStyle.Render(truncateStr(a.Source.Name, width/2)) +
		" " + itemTimeStyle.Render("· "+relativeTime(a.PublishedAt))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderList draws one page of articles. A page never holds more than the
// page size, so every item is drawn when the pane is tall enough.
func renderList(articles []news.Article, cursor int, height int, width int) string {
	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := max(height/itemHeight, 1)

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(articles))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(articles[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// emptyMessage is shown in place of the list when nothing matches.
func emptyMessage(term string) string {
	if term == "" {
		return "No articles found"
	}
	return fmt.Sprintf("No articles found for the search term %q", term)
}

func lipglossCenter(s string, width, height int) string {
	pad := max((width-len([]rune(s)))/2, 0)
	return strings.Repeat("\n", max(height/3, 0)) + strings.Repeat(" ", pad) + s
}
