// Package style holds the lipgloss styles used by the terminal renderer.
package style

import (
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Entry styles
var (
	FolderStyle   = lipgloss.NewStyle().Foreground(FolderColor)
	FileStyle     = lipgloss.NewStyle().Foreground(FileColor)
	MissingStyle  = lipgloss.NewStyle().Foreground(MissingColor).Faint(true)
	SymlinkStyle  = lipgloss.NewStyle().Foreground(SymlinkColor)
	MatchStyle    = lipgloss.NewStyle().Foreground(MatchColor).Bold(true)
	MismatchStyle = lipgloss.NewStyle().Foreground(MismatchColor).Bold(true)
)

// ForStyle returns the lipgloss style for an entry display style
func ForStyle(s types.Style) lipgloss.Style {
	switch s {
	case types.StyleFolder:
		return FolderStyle
	case types.StyleFile:
		return FileStyle
	case types.StyleSymlink:
		return SymlinkStyle
	case types.StyleMatch:
		return MatchStyle
	case types.StyleMismatch:
		return MismatchStyle
	default:
		return MissingStyle
	}
}

// Entry renders text in the colour of s
func Entry(s types.Style, text string) string {
	return ForStyle(s).Render(text)
}

// Indicator renders a pair indicator
func Indicator(indicator string) string {
	switch indicator {
	case types.IndicatorMatch:
		return MatchStyle.Render(indicator)
	case types.IndicatorMismatch:
		return MismatchStyle.Render(indicator)
	default:
		return indicator
	}
}

// Bold renders s in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
