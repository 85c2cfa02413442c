package cli

import "github.com/charmbracelet/lipgloss"

// Shared terminal color palette for CLI output.
var (
	colorCyan  = lipgloss.Color("36")  // titles and highlights
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
	colorGreen = lipgloss.Color("35")  // success accents
)

var (
	// styleTitle for headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleHeader for table headers.
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray)

	// styleCount for numeric summary values.
	styleCount = lipgloss.NewStyle().Foreground(colorGreen)
)
