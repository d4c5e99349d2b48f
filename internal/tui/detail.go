package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shoutbox/internal/board"
)

func renderDetail(s *board.Sentence, owned bool, width, height int) string {
	if s == nil {
		return lipglossCenter("Select a sentence", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	author := detailAuthorStyle.Render(board.Sanitize(s.Name))
	badge := categoryBadgeStyle.Render(string(s.Category))
	header := lipgloss.JoinHorizontal(lipgloss.Top, author, "  ", badge)

	body := detailBodyStyle.Width(contentWidth).Render(
		wrapText(board.Sanitize(s.Text), contentWidth),
	)

	meta := "Posted " + s.CreatedAt.Format("Jan 2, 2006 at 15:04")
	if owned {
		meta += " · yours, d deletes it"
	}
	footer := detailMetaStyle.Width(contentWidth).Render(meta)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)

	// Pad to fill height
	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
