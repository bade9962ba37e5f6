//go:build !windows

package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tr := NewTree(t)

	dir := tr.Dir("src/docs")
	file := tr.File("src/notes/today.txt", "hello")
	link := tr.Symlink("dst/Docs", dir)

	assert.DirExists(t, dir)
	content, err := os.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(content))
	AssertSymlink(t, link, dir)
	AssertMissing(t, tr.Path("dst/absent"))
}

func TestTree_BrokenSymlinkIsNotMissing(t *testing.T) {
	tr := NewTree(t)
	link := tr.Symlink("dangling", tr.Path("gone"))

	_, err := os.Lstat(link)
	assert.NoError(t, err)
	AssertSymlink(t, link, tr.Path("gone"))
}

func TestIsolate(t *testing.T) {
	dir := Isolate(t)

	assert.Equal(t, "1", os.Getenv("NO_COLOR"))
	assert.Contains(t, os.Getenv("LINKMIRROR_CONFIG_DIR"), dir)
	assert.Contains(t, os.Getenv("XDG_STATE_HOME"), dir)
}
