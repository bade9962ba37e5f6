package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
)

// Output formats accepted by output.format
var validFormats = []string{"auto", "term", "text", "json"}

// Config is the resolved configuration
type Config struct {
	Rules   RulesConfig   `koanf:"rules"`
	Watch   WatchConfig   `koanf:"watch"`
	Apply   ApplyConfig   `koanf:"apply"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// RulesConfig selects the rule file and platform
type RulesConfig struct {
	File     string `koanf:"file"`
	Platform string `koanf:"platform"`
}

// WatchConfig tunes change handling
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// ApplyConfig tunes link creation
type ApplyConfig struct {
	Concurrency int `koanf:"concurrency"`
}

// OutputConfig selects the presentation
type OutputConfig struct {
	Format string `koanf:"format"`
}

// LoggingConfig controls log file rotation
type LoggingConfig struct {
	MaxSizeMB  int  `koanf:"max_size_mb"`
	MaxBackups int  `koanf:"max_backups"`
	MaxAgeDays int  `koanf:"max_age_days"`
	Compress   bool `koanf:"compress"`
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Apply.Concurrency < 1 {
		return errors.Newf(errors.ErrConfigValid, "apply.concurrency must be positive, got %d", c.Apply.Concurrency).
			WithDetail("key", "apply.concurrency")
	}
	if c.Watch.Debounce < 0 {
		return errors.Newf(errors.ErrConfigValid, "watch.debounce must not be negative, got %s", c.Watch.Debounce).
			WithDetail("key", "watch.debounce")
	}
	if !isValidFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "output.format must be one of %s, got %q",
			strings.Join(validFormats, ", "), c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return errors.New(errors.ErrConfigValid, "logging limits must not be negative").
			WithDetail("key", "logging")
	}
	return nil
}

// LogFileOptions converts the logging section for the logger
func (c *Config) LogFileOptions(path string) logging.FileOptions {
	return logging.FileOptions{
		Path:       path,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
