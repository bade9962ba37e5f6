package types

import "encoding/json"

// Style is the display category of one side of a pair
type Style int

const (
	StyleMissing Style = iota
	StyleFile
	StyleFolder
	StyleSymlink
	StyleMatch
	StyleMismatch
)

// String returns the string representation of the style
func (s Style) String() string {
	switch s {
	case StyleFile:
		return "file"
	case StyleFolder:
		return "folder"
	case StyleSymlink:
		return "symlink"
	case StyleMissing:
		return "missing"
	case StyleMatch:
		return "match"
	case StyleMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the style by name
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Indicator symbols shown between source and target
const (
	IndicatorNone     = ""
	IndicatorMatch    = "✔"
	IndicatorMismatch = "✖"
)

// PairState is the evaluated display state of a mirror pair
type PairState struct {
	SourceStyle   Style  `json:"source_style"`
	TargetStyle   Style  `json:"target_style"`
	Indicator     string `json:"indicator"`
	SourceTooltip string `json:"source_tooltip"`
	TargetTooltip string `json:"target_tooltip"`
}
