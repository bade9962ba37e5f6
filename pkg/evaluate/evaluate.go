// Package evaluate derives the display state of a mirror pair and decides
// whether a link at the target points back at its source.
package evaluate

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/types"
)

// Evaluate computes the display state of pair. It is a pure function: the
// same pair always yields the same state.
func Evaluate(pair types.MirrorPair) types.PairState {
	state := types.PairState{
		SourceStyle:   styleOf(pair.Source.Kind),
		TargetStyle:   styleOf(pair.Target.Kind),
		Indicator:     types.IndicatorNone,
		SourceTooltip: Tooltip(pair.Source),
		TargetTooltip: Tooltip(pair.Target),
	}

	if pair.Target.Kind != types.EntrySymlink {
		return state
	}

	switch {
	case pair.Source.Kind == types.EntryMissing:
		// orphaned link
		state.TargetStyle = types.StyleSymlink
	case LinksTo(pair.Target, pair.Source.FullPath):
		state.SourceStyle = types.StyleMatch
		state.TargetStyle = types.StyleMatch
		state.Indicator = types.IndicatorMatch
	default:
		state.SourceStyle = types.StyleMismatch
		state.TargetStyle = types.StyleMismatch
		state.Indicator = types.IndicatorMismatch
	}
	return state
}

// LinksTo reports whether link is a symlink whose target is path equivalent
// to expected. Relative targets are taken from the directory holding the
// link. A link with an unknown target never matches.
func LinksTo(link types.ClassifiedEntry, expected string) bool {
	if !link.HasTarget() {
		return false
	}
	target := link.Target
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(link.FullPath), target)
	}
	return PathsEqual(target, expected)
}

// PathsEqual compares two paths after dropping trailing separators and
// making them absolute. The comparison ignores case on every platform.
func PathsEqual(a, b string) bool {
	return strings.EqualFold(normalize(a), normalize(b))
}

func normalize(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		// filesystem or volume root
		trimmed = p
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return filepath.Clean(trimmed)
	}
	return abs
}

// Tooltip describes an entry for display
func Tooltip(entry types.ClassifiedEntry) string {
	switch entry.Kind {
	case types.EntryFile:
		return "File"
	case types.EntryFolder:
		return "Folder"
	case types.EntryMissing:
		return "Missing"
	case types.EntrySymlink:
		if entry.HasTarget() {
			return "Symlink → " + entry.Target
		}
		return "Symlink"
	default:
		return ""
	}
}

func styleOf(kind types.EntryKind) types.Style {
	switch kind {
	case types.EntryFile:
		return types.StyleFile
	case types.EntryFolder:
		return types.StyleFolder
	case types.EntrySymlink:
		return types.StyleSymlink
	default:
		return types.StyleMissing
	}
}
