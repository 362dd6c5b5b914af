package styles

import "github.com/charmbracelet/lipgloss"

// Terminal palette.
var (
	ColorMuted   = lipgloss.Color("#656d76") // muted/dim text
	ColorAccent  = lipgloss.Color("#0969da") // accent blue
	ColorError   = lipgloss.Color("#cf222e") // removed diff lines
	ColorSuccess = lipgloss.Color("#1a7f37") // added diff lines
)

// Centralized style definitions for the walkthrough output.
var (
	// Section title above each prompt.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// System prompt line.
	SystemStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	// The prompt text itself, set off with a left border.
	PromptStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(ColorAccent)

	// Diff line styles.
	DiffAddStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	DiffDelStyle = lipgloss.NewStyle().Foreground(ColorError)

	// General utility styles.
	DimStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
