package tui

import (
	"github.com/charmbracelet/lipgloss"

	"shoutbox/internal/board"
)

// Rows of the filter editor, top to bottom.
const (
	filterRowCategory = iota
	filterRowUser
	filterRowSort
	filterRowCount
)

func filterRowLabel(row int) string {
	switch row {
	case filterRowCategory:
		return "category"
	case filterRowUser:
		return "user"
	default:
		return "sort"
	}
}

// filterOptions enumerates the values a row can take. Category and user
// rows lead with the wildcard; sort has no wildcard to offer.
func filterOptions(row int, users []string) []string {
	switch row {
	case filterRowCategory:
		opts := []string{board.All}
		for _, c := range board.Categories() {
			opts = append(opts, string(c))
		}
		return opts
	case filterRowUser:
		return append([]string{board.All}, users...)
	default:
		opts := make([]string, 0, len(board.SortOrders()))
		for _, o := range board.SortOrders() {
			opts = append(opts, string(o))
		}
		return opts
	}
}

// cycleOption steps through opts from cur, wrapping at both ends.
func cycleOption(opts []string, cur string, delta int) string {
	if len(opts) == 0 {
		return cur
	}
	idx := 0
	for i, o := range opts {
		if o == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(opts)) % len(opts)
	return opts[idx]
}

func renderCategoryTabs(active board.Category, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	for _, opt := range filterOptions(filterRowCategory, nil) {
		style := tabInactiveStyle
		if opt == string(active) {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(opt))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}

// renderFilterEditor draws the active row of the filter editor in the
// bar slot: the row label, then its options with the current value
// bracketed.
func renderFilterEditor(row int, cur string, users []string, width int) string {
	label := filterLabelStyle.Render(filterRowLabel(row) + ": ")
	sep := tabSeparatorStyle.Render(" · ")
	avail := width - lipgloss.Width(label) - 1

	var parts []string
	for _, opt := range filterOptions(row, users) {
		if opt == cur {
			parts = append(parts, filterValueStyle.Render("["+opt+"]"))
		} else {
			parts = append(parts, tabInactiveStyle.Render(opt))
		}
	}

	var line string
	for i, part := range parts {
		candidate := line
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > avail && line != "" {
			break
		}
		line = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(label + line)
}
