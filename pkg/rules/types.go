package rules

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/types"
)

// Platform is a named, ordered list of mapping rules
type Platform struct {
	Name  string              `json:"name" yaml:"name" toml:"name" koanf:"name"`
	Rules []types.MappingRule `json:"rules" yaml:"rules" toml:"rules" koanf:"rules"`
}

// RuleSet is the parsed content of a rule file
type RuleSet struct {
	// SourceRoot is absolute once loaded through Load
	SourceRoot string     `json:"source" yaml:"source" toml:"source" koanf:"source"`
	Platforms  []Platform `json:"platforms" yaml:"platforms" toml:"platforms" koanf:"platforms"`

	// Path is the file the set was loaded from
	Path string `json:"-" yaml:"-" toml:"-" koanf:"-"`
}

// Names returns the platform names in file order
func (rs *RuleSet) Names() []string {
	names := make([]string, 0, len(rs.Platforms))
	for _, p := range rs.Platforms {
		names = append(names, p.Name)
	}
	return names
}

// Platform finds a platform by name, ignoring case
func (rs *RuleSet) Platform(name string) (*Platform, error) {
	for i := range rs.Platforms {
		if strings.EqualFold(rs.Platforms[i].Name, name) {
			return &rs.Platforms[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrPlatform, "platform %q not found", name).
		WithDetail("platform", name).
		WithDetail("available", rs.Names())
}

// DefaultPlatform returns the platform named after the running OS, or the
// first one. It returns nil for an empty set.
func (rs *RuleSet) DefaultPlatform() *Platform {
	if len(rs.Platforms) == 0 {
		return nil
	}
	if p, err := rs.Platform(runtime.GOOS); err == nil {
		return p
	}
	return &rs.Platforms[0]
}

// SelectPlatform resolves name, falling back to DefaultPlatform when name
// is empty.
func (rs *RuleSet) SelectPlatform(name string) (*Platform, error) {
	if name != "" {
		return rs.Platform(name)
	}
	if p := rs.DefaultPlatform(); p != nil {
		return p, nil
	}
	return nil, errors.New(errors.ErrPlatform, "rule set defines no platforms")
}

// Validate checks structural consistency
func (rs *RuleSet) Validate() error {
	if strings.TrimSpace(rs.SourceRoot) == "" {
		return errors.New(errors.ErrRulesInvalid, "rule set has no source root")
	}
	seen := make(map[string]bool, len(rs.Platforms))
	for i, p := range rs.Platforms {
		if strings.TrimSpace(p.Name) == "" {
			return errors.Newf(errors.ErrRulesInvalid, "platform %d has no name", i)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return errors.Newf(errors.ErrRulesInvalid, "platform %q is defined twice", p.Name).
				WithDetail("platform", p.Name)
		}
		seen[key] = true
		for j, r := range p.Rules {
			if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
				return errors.Newf(errors.ErrRulesInvalid, "rule %d of platform %q needs an origin and a destination", j, p.Name).
					WithDetail("platform", p.Name).
					WithDetail("rule", j)
			}
		}
	}
	return nil
}
