package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/linkmirror/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for linkmirror
	EnvConfigDir = "LINKMIRROR_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for linkmirror
	EnvStateDir = "LINKMIRROR_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directory and file names
const (
	AppDirName     = "linkmirror"
	ConfigFileName = "config.toml"
	RulesFileName  = "rules.toml"
	LogFileName    = "linkmirror.log"
)

// Paths locates linkmirror's own files
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFile() string
	RulesFile() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ConfigDir returns the configuration directory
func (p *paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory
func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFile returns the user configuration file path
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// RulesFile returns the default rule file path
func (p *paths) RulesFile() string {
	return filepath.Join(p.configDir, RulesFileName)
}

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// Resolve expands ~ and makes path absolute
func Resolve(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path).
			WithDetail("path", path)
	}
	return abs, nil
}
