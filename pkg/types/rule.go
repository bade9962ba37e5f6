package types

// MappingRule declares one source to target correspondence, both relative
// to their respective roots.
type MappingRule struct {
	Origin      string `json:"origin" yaml:"origin" toml:"origin" koanf:"origin"`
	Destination string `json:"destination" yaml:"destination" toml:"destination" koanf:"destination"`
}

// MirrorPair is the classified state of both sides of one rule
type MirrorPair struct {
	Source ClassifiedEntry `json:"source"`
	Target ClassifiedEntry `json:"target"`
}

// NeedsLink reports whether apply would create a link for this pair
func (p MirrorPair) NeedsLink() bool {
	return p.Source.Kind.IsSource() && p.Target.Kind == EntryMissing
}

// EvaluatedPair is one row of a refresh result, in rule order
type EvaluatedPair struct {
	Rule  MappingRule `json:"rule"`
	Pair  MirrorPair  `json:"pair"`
	State PairState   `json:"state"`
}
