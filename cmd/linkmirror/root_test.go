package linkmirror

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and no terminal
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, opts := newRootCmd()
	opts.prompt = &promptSelector{interactive: func() bool { return false }}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "linkmirror version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestRootCmd_NoCommand(t *testing.T) {
	testutil.Isolate(t)

	_, err := execute(t)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmd_UnknownFormat(t *testing.T) {
	testutil.Isolate(t)

	_, err := execute(t, "rules", "--format", "yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	dir := testutil.Isolate(t)

	_, err := execute(t, "version", "--config", filepath.Join(dir, "absent.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestRulesCmd_MissingRuleFile(t *testing.T) {
	testutil.Isolate(t)

	_, err := execute(t, "rules")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRulesLoad))
	assert.Contains(t, err.Error(), "linkmirror init")
}

func TestInitCmd_ThenRules(t *testing.T) {
	dir := testutil.Isolate(t)
	path := filepath.Join(dir, "rules", "rules.yaml")

	out, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample rules to "+path)

	_, err = execute(t, "init", path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "existing file needs --force")

	_, err = execute(t, "init", path, "--force")
	require.NoError(t, err)

	out, err = execute(t, "rules", "--rules", path, "--platform", "windows", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "rules:  "+path)
	assert.Contains(t, out, "windows (selected)")
	assert.Contains(t, out, "linux")
	assert.Contains(t, out, "darwin")
}

func TestInitCmd_DefaultLocation(t *testing.T) {
	dir := testutil.Isolate(t)

	_, err := execute(t, "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config", "rules.toml"))
}

func TestRulesCmd_UnknownPlatform(t *testing.T) {
	dir := testutil.Isolate(t)
	path := filepath.Join(dir, "rules.toml")
	_, err := execute(t, "init", path)
	require.NoError(t, err)

	_, err = execute(t, "rules", "--rules", path, "--platform", "plan9")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatform))
}

func TestHelpTopics(t *testing.T) {
	testutil.Isolate(t)

	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration")
	assert.Contains(t, out, "rules")
	assert.Contains(t, out, "states")
	assert.Contains(t, out, "--target")
	assert.Contains(t, out, "--format")
}

func TestPromptSelector(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		name        string
		interactive bool
		answer      string
		wantPath    string
		wantOK      bool
	}{
		{"no terminal", false, "~/mirror", "", false},
		{"empty answer", true, "  ", "", false},
		{"home relative", true, "~/mirror", filepath.Join(home, "mirror"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &promptSelector{
				interactive: func() bool { return tt.interactive },
				ask:         func(string) (string, error) { return tt.answer, nil },
			}
			path, ok, err := sel.SelectFolder(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestFlagSelector(t *testing.T) {
	dir := t.TempDir()

	path, ok, err := (&flagSelector{path: dir}).SelectFolder(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, path)
}
