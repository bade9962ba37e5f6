package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tree is a directory fixture rooted in a temporary directory
type Tree struct {
	t    *testing.T
	Root string
}

// NewTree creates an empty fixture, removed when the test completes
func NewTree(t *testing.T) *Tree {
	t.Helper()
	return &Tree{t: t, Root: t.TempDir()}
}

// Path returns the absolute path of rel inside the tree
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, filepath.FromSlash(rel))
}

// Dir creates rel and its parents
func (tr *Tree) Dir(rel string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, os.MkdirAll(path, 0755), "create directory %s", path)
	return path
}

// File writes content to rel, creating parents as needed
func (tr *Tree) File(rel, content string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, os.WriteFile(path, []byte(content), 0644), "create file %s", path)
	return path
}

// Symlink creates a link at rel pointing to target, stored verbatim
func (tr *Tree) Symlink(rel, target string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, os.Symlink(target, path), "create symlink %s -> %s", path, target)
	return path
}

// AssertSymlink checks that link is a symlink storing target
func AssertSymlink(t *testing.T, link, target string) {
	t.Helper()
	info, err := os.Lstat(link)
	require.NoError(t, err, "symlink %s does not exist", link)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s is not a symlink", link)

	got, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, target, got, "symlink %s target", link)
}

// AssertMissing checks that nothing, not even a broken link, is at path
func AssertMissing(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "%s should not exist", path)
}
