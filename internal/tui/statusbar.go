package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(count int, summary string, streak int, width int, m mode, loading bool, spin string) string {
	streakAccentStyle := lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	left := fmt.Sprintf(" %d sentences · %s", count, summary)
	if streak >= 1 {
		left += fmt.Sprintf(" · %s %dd", streakAccentStyle.Render("streak"), streak)
	}
	if loading {
		left += " " + spin
	}

	right := " n post  / search  f filter  q quit "
	switch m {
	case modeSearch:
		right = " esc cancel  enter apply "
	case modeFilter:
		right = " ←/→ change  ↑/↓ row  x clear  esc done "
	case modeCompose:
		right = " tab field  enter post  esc cancel "
	case modeConfirmDelete:
		right = " ←/→ select  enter confirm  esc cancel "
	case modeHelp:
		right = " esc close "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

// renderNotice takes over the status bar line until the next keypress.
func renderNotice(n notice, width int) string {
	return noticeStyleFor(n.level).Width(width).Render(" " + n.text)
}
