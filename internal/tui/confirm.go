package tui

import (
	"github.com/charmbracelet/lipgloss"

	"shoutbox/internal/board"
)

// confirmModal asks before a delete goes out. Selection starts on
// cancel; destructive choices take a deliberate keystroke.
type confirmModal struct {
	id              string
	excerpt         string
	confirmSelected bool
}

func newConfirmModal(s board.Sentence) confirmModal {
	return confirmModal{
		id:      s.ID,
		excerpt: truncateStr(board.Sanitize(s.Text), 56),
	}
}

func (m *confirmModal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

func (m confirmModal) ConfirmSelected() bool {
	return m.confirmSelected
}

func (m confirmModal) render(width, height int) string {
	title := modalTitleStyle.Render("Delete this sentence?")
	body := modalBodyStyle.Render("“" + m.excerpt + "”")

	deleteBtn := modalButtonStyle.Render("Delete")
	cancelBtn := modalButtonActiveStyle.Render("Cancel")
	if m.confirmSelected {
		deleteBtn = modalButtonActiveStyle.Render("Delete")
		cancelBtn = modalButtonStyle.Render("Cancel")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, deleteBtn, "  ", cancelBtn)

	help := modalHelpStyle.Render("←/→ select · enter confirm · esc cancel")

	box := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		title,
		body,
		"",
		buttons,
		help,
	))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
