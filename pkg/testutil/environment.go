package testutil

import (
	"path/filepath"
	"testing"
)

// Isolate redirects the config, state and log directories into a fresh
// temporary directory, disables colour output and returns that directory
func Isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LINKMIRROR_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("LINKMIRROR_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "xdg-state"))
	t.Setenv("NO_COLOR", "1")
	return dir
}
