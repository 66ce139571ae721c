package inlineedit

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	ConfirmColor = lipgloss.Color("#43BF6D") // Green
	CancelColor  = lipgloss.Color("#FF8B94") // Pink
	SubtleColor  = lipgloss.Color("#626262") // Gray
	TextColor    = lipgloss.Color("#FFFFFF") // White
)

// Labels
const (
	ConfirmLabel = "Y"
	CancelLabel  = "N"
	EmptyText    = "(empty)"
)

var (
	// Shown in place of an empty committed text so there is something to click
	EmptyTextStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	EditorTextStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	EditorCursorStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor)

	ConfirmButtonStyle = lipgloss.NewStyle().
				Foreground(ConfirmColor).
				Bold(true).
				Padding(0, 1)

	CancelButtonStyle = lipgloss.NewStyle().
				Foreground(CancelColor).
				Bold(true).
				Padding(0, 1)

	// Gap between the two option buttons
	OptionsGap = "  "
)

func renderConfirmButton() string {
	return ConfirmButtonStyle.Render("[" + ConfirmLabel + "]")
}

func renderCancelButton() string {
	return CancelButtonStyle.Render("[" + CancelLabel + "]")
}
