package types

import "encoding/json"

// EntryKind describes what exists at a path
type EntryKind int

const (
	EntryMissing EntryKind = iota
	EntryFile
	EntryFolder
	EntrySymlink
)

// String returns the string representation of the kind
func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryFolder:
		return "folder"
	case EntrySymlink:
		return "symlink"
	case EntryMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind by name
func (k EntryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// IsSource reports whether an entry of this kind can be linked to
func (k EntryKind) IsSource() bool {
	return k == EntryFile || k == EntryFolder
}

// ClassifiedEntry is an immutable description of one side of a mirror pair.
// Target is only meaningful for EntrySymlink; an empty Target on a symlink
// means the link target could not be resolved.
type ClassifiedEntry struct {
	Name     string    `json:"name"`
	FullPath string    `json:"path"`
	Kind     EntryKind `json:"kind"`
	Target   string    `json:"target,omitempty"`
}

// NewEntry creates a non-link entry
func NewEntry(name, fullPath string, kind EntryKind) ClassifiedEntry {
	return ClassifiedEntry{Name: name, FullPath: fullPath, Kind: kind}
}

// NewSymlinkEntry creates a link entry with a known (or empty) target
func NewSymlinkEntry(name, fullPath, target string) ClassifiedEntry {
	return ClassifiedEntry{Name: name, FullPath: fullPath, Kind: EntrySymlink, Target: target}
}

// HasTarget reports whether the link target is known
func (e ClassifiedEntry) HasTarget() bool {
	return e.Kind == EntrySymlink && e.Target != ""
}
