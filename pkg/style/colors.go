package style

import "github.com/charmbracelet/lipgloss"

// Entry palette, one colour per display style
var (
	FolderColor   = lipgloss.Color("#DAA520") // goldenrod
	FileColor     = lipgloss.Color("#B8860B") // dark goldenrod
	MissingColor  = lipgloss.Color("#D3D3D3") // light grey
	SymlinkColor  = lipgloss.Color("#B0C4DE") // light steel blue
	MatchColor    = lipgloss.Color("#98FB98") // pale green
	MismatchColor = lipgloss.Color("#CD5C5C") // indian red
)

// UI colours
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ErrorColor   = lipgloss.Color("#CD5C5C")
	SuccessColor = lipgloss.Color("#98FB98")
	WarningColor = lipgloss.Color("#DAA520")
	PathColor    = lipgloss.Color("#B0C4DE")
)
