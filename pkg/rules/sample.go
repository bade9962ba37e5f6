package rules

import (
	"path/filepath"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Sample returns a starter rule set with one platform per common OS
func Sample() *RuleSet {
	common := []types.MappingRule{
		{Origin: "docs", Destination: "Docs"},
		{Origin: "notes.md", Destination: "notes.md"},
	}

	return &RuleSet{
		SourceRoot: ".",
		Platforms: []Platform{
			{Name: "linux", Rules: append([]types.MappingRule{
				{Origin: "config/app", Destination: ".config/app"},
			}, common...)},
			{Name: "darwin", Rules: append([]types.MappingRule{
				{Origin: "config/app", Destination: "Library/Application Support/app"},
			}, common...)},
			{Name: "windows", Rules: append([]types.MappingRule{
				{Origin: "config/app", Destination: "AppData/Roaming/app"},
			}, common...)},
		},
	}
}

// Marshal encodes rs in format
func Marshal(rs *RuleSet, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		data, err := toml.Marshal(rs)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML rules")
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(rs)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML rules")
		}
		return data, nil
	case FormatXML:
		return marshalXML(rs)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported rule format %q", format)
	}
}

// WriteSample writes the sample rule set to path, in the format implied by
// its extension. An existing file is only replaced when force is set.
func WriteSample(fs afero.Fs, path string, force bool) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if exists, err := afero.Exists(fs, path); err != nil {
		return errors.Wrapf(err, errors.ErrRulesLoad, "cannot inspect %s", path).
			WithDetail("path", path)
	} else if exists && !force {
		return errors.Newf(errors.ErrInvalidInput, "%s already exists", path).
			WithDetail("path", path)
	}

	data, err := Marshal(Sample(), format)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path)).
			WithDetail("path", path)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRulesLoad, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}
