package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#0E7C5B", Dark: "#2BD99F"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#C2366B", Dark: "#F25D94"}
	colorWarn      = lipgloss.AdaptiveColor{Light: "#A8720A", Dark: "#E5C07B"}
	colorDanger    = lipgloss.AdaptiveColor{Light: "#C03434", Dark: "#E06C75"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#0E7C5B", Dark: "#2BD99F"}
	colorTabActive = lipgloss.AdaptiveColor{Light: "#0E7C5B", Dark: "#2BD99F"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#1E2E28"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#14251E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr)

	detailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	itemTextStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	itemAuthorStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	itemTimeStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	newMarkerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	ownedHintStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	detailAuthorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGreen).
				MarginBottom(1)

	detailBodyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	detailMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true).
			MarginTop(1)

	categoryBadgeStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorTabBg).
				Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorTabActive).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorTabBg)

	filterLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	filterValueStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	noticeInfoStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorGreen).
			PaddingLeft(1).
			PaddingRight(1)

	noticeWarnStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorWarn).
			PaddingLeft(1).
			PaddingRight(1)

	noticeErrorStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorDanger).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	composeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				MarginBottom(1)

	composeLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	composeFocusLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	composeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr).
			Padding(1, 2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDanger).
			Padding(1, 3)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDanger).
			MarginBottom(1)

	modalBodyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	modalButtonStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 2)

	modalButtonActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorDanger).
				Bold(true).
				Padding(0, 2)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 3)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

func noticeStyleFor(level noticeLevel) lipgloss.Style {
	switch level {
	case noticeWarn:
		return noticeWarnStyle
	case noticeError:
		return noticeErrorStyle
	default:
		return noticeInfoStyle
	}
}
