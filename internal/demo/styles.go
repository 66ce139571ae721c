package demo

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/inlineedit/internal/version"
)

// Application branding constants
const (
	AppName = "INLINE EDIT DEMO"
)

// Layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	ContentIndent = 2 // Columns between the terminal edge and each field
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingLeft(ContentIndent)

	// Marker drawn left of the focused field
	FocusMarker = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Render("›")
)

// elementStyles maps an element name to the style its text is drawn with
var elementStyles = map[string]lipgloss.Style{
	"h1":   lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor),
	"h2":   lipgloss.NewStyle().Bold(true).Foreground(SecondaryColor),
	"h3":   lipgloss.NewStyle().Bold(true).Foreground(AccentColor),
	"h4":   lipgloss.NewStyle().Bold(true).Foreground(TextColor),
	"h5":   lipgloss.NewStyle().Bold(true).Italic(true),
	"h6":   lipgloss.NewStyle().Italic(true).Foreground(SubtleColor),
	"p":    lipgloss.NewStyle().Foreground(TextColor),
	"span": lipgloss.NewStyle(),
}

// ElementStyle returns the text style for an element, falling back to plain
func ElementStyle(element string) lipgloss.Style {
	if s, ok := elementStyles[element]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderHeader renders the title block shown above the fields
func RenderHeader() string {
	title := TitleStyle.Render(AppName + " v" + version.Version)
	subtitle := SubtitleStyle.Render("Click any text to edit it. Enter confirms, Esc cancels, clicking elsewhere keeps your change.")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// GetTerminalSize returns the terminal size, or the defaults when stdout is
// not a terminal.
func GetTerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
