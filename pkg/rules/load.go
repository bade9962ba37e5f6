package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/arthur-debert/linkmirror/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format is a rule file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrRulesLoad, "unsupported rule file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Load reads and validates the rule file at path from the OS filesystem
func Load(path string) (*RuleSet, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads and validates the rule file at path from fs. A leading ~ in
// the source root is expanded and a relative source root is made absolute
// against the rule file's directory.
func LoadFS(fs afero.Fs, path string) (*RuleSet, error) {
	logger := logging.GetLogger("rules.load")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to resolve rule file path %s", path).
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(fs, absPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to read rule file %s", absPath).
			WithDetail("path", absPath)
	}

	rs, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid rule file %s", absPath).
			WithDetail("path", absPath)
	}

	rs.Path = absPath
	rs.SourceRoot = paths.ExpandHome(rs.SourceRoot)
	if rs.SourceRoot != "" && !filepath.IsAbs(rs.SourceRoot) {
		rs.SourceRoot = filepath.Join(filepath.Dir(absPath), rs.SourceRoot)
	}
	rs.SourceRoot = filepath.Clean(rs.SourceRoot)

	logger.Debug().
		Str("path", absPath).
		Str("source", rs.SourceRoot).
		Strs("platforms", rs.Names()).
		Msg("Loaded rule set")

	return rs, nil
}

// Parse decodes and validates a rule set. The source root is returned as
// written.
func Parse(data []byte, format Format) (*RuleSet, error) {
	var (
		rs  *RuleSet
		err error
	)

	switch format {
	case FormatTOML:
		rs, err = parseTOML(data)
	case FormatYAML:
		rs, err = parseYAML(data)
	case FormatXML:
		rs, err = parseXML(data)
	default:
		return nil, errors.Newf(errors.ErrRulesLoad, "unsupported rule format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

func parseTOML(data []byte) (*RuleSet, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesParse, "failed to parse TOML rules")
	}

	var rs RuleSet
	if err := k.UnmarshalWithConf("", &rs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesParse, "failed to decode TOML rules")
	}
	return &rs, nil
}

func parseYAML(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesParse, "failed to parse YAML rules")
	}
	return &rs, nil
}
