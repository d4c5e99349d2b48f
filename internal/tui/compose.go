package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shoutbox/internal/board"
)

// Fields of the compose form, in tab order.
const (
	composeFocusText = iota
	composeFocusName
	composeFocusCategory
	composeFieldCount
)

// composeBoxWidth clamps the form box to something readable on both
// narrow and wide terminals.
func composeBoxWidth(width int) int {
	w := width - 8
	if w > 76 {
		w = 76
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (a *App) renderCompose(width, height int) string {
	boxWidth := composeBoxWidth(width)

	title := composeTitleStyle.Render("Post a sentence")

	textLabel := composeLabelStyle.Render("sentence")
	if a.composeFocus == composeFocusText {
		textLabel = composeFocusLabelStyle.Render("sentence")
	}
	counter := composeLabelStyle.Render(
		fmt.Sprintf("%d/%d", len([]rune(a.textInput.Value())), board.MaxTextLen),
	)

	nameLabel := composeLabelStyle.Render("name")
	if a.composeFocus == composeFocusName {
		nameLabel = composeFocusLabelStyle.Render("name")
	}

	catLabel := composeLabelStyle.Render("category")
	if a.composeFocus == composeFocusCategory {
		catLabel = composeFocusLabelStyle.Render("category")
	}
	cats := renderCategoryPicker(a.catCursor, a.composeFocus == composeFocusCategory)

	hint := composeLabelStyle.Render("enter post · tab next field · esc cancel")
	if a.submitting {
		hint = a.spinner.View() + " posting..."
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		title,
		textLabel,
		a.textInput.View(),
		counter,
		"",
		nameLabel,
		a.nameInput.View(),
		"",
		catLabel,
		cats,
		"",
		hint,
	)

	box := composeBoxStyle.Width(boxWidth).Render(form)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderCategoryPicker lays the categories out on one line with the
// chosen one bracketed. The brackets dim when focus is elsewhere.
func renderCategoryPicker(cursor int, focused bool) string {
	var parts []string
	for i, c := range board.Categories() {
		label := string(c)
		switch {
		case i == cursor && focused:
			parts = append(parts, filterValueStyle.Render("["+label+"]"))
		case i == cursor:
			parts = append(parts, composeLabelStyle.Render("["+label+"]"))
		default:
			parts = append(parts, composeLabelStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
