package tui

import (
	"fmt"
	"strings"
	"time"

	"shoutbox/internal/api"
	"shoutbox/internal/board"
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

func renderListItem(s board.Sentence, selected, owned, unseen bool, width int) string {
	if width < 10 {
		width = 30
	}

	text := board.Sanitize(s.Text)
	var first string
	if selected {
		first = itemSelectedStyle.Render("> " + truncateStr(text, width-4))
	} else {
		first = itemTextStyle.Render("  " + truncateStr(text, width-4))
	}

	meta := "  " + itemAuthorStyle.Render(board.Sanitize(s.Name)) + " " +
		itemTimeStyle.Render("· "+string(s.Category)+" · "+relativeTime(s.CreatedAt))
	if unseen {
		meta += " " + newMarkerStyle.Render("•")
	}
	if owned {
		meta += " " + ownedHintStyle.Render("[d]")
	}

	return first + "\n" + meta
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

func renderList(sentences []board.Sentence, cursor int, seen map[string]bool, owns func(board.Sentence) bool, height, width int) string {
	if len(sentences) == 0 {
		return lipglossCenter("No sentences found", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(sentences) {
		end = len(sentences)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		s := sentences[i]
		b.WriteString(renderListItem(s, i == cursor, owns(s), !seen[s.ID], width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", (width-len(s))/2) + s
}

// renderLoadError fills the list slot when a fetch failed; r issues a
// fresh fetch.
func renderLoadError(err error, width, height int) string {
	lines := []string{
		"Couldn't load sentences",
		truncateStr(api.Message(err), max(10, width-2)),
		"",
		"press r to retry",
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", height/3))
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		indent := (width - len(line)) / 2
		if indent < 0 {
			indent = 0
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString(line)
	}
	return b.String()
}
