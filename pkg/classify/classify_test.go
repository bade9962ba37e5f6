package classify

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInteractor reports every path in links as a link
type fakeInteractor struct {
	links      map[string]string
	resolveErr error
	calls      int
}

func (f *fakeInteractor) CreateLink(linkPath, targetPath string, isDirectory bool) (bool, error) {
	return false, nil
}

func (f *fakeInteractor) IsLink(path string) bool {
	f.calls++
	_, ok := f.links[path]
	return ok
}

func (f *fakeInteractor) ResolveLink(path string) (string, bool, error) {
	if f.resolveErr != nil {
		return "", false, f.resolveErr
	}
	target, ok := f.links[path]
	return target, ok, nil
}

func TestClassify(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/root/folder", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/file.txt", []byte("x"), 0644))
	require.NoError(t, fs.MkdirAll("/root/junction", 0755))

	li := &fakeInteractor{links: map[string]string{
		"/root/junction": "/elsewhere",
		"/root/missing":  "/ignored",
	}}

	tests := []struct {
		name   string
		path   string
		want   types.EntryKind
		target string
	}{
		{"plain file", "/root/file.txt", types.EntryFile, ""},
		{"plain folder", "/root/folder", types.EntryFolder, ""},
		{"link wins over directory", "/root/junction", types.EntrySymlink, "/elsewhere"},
		{"missing regardless of interactor", "/root/missing", types.EntryMissing, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Classify(fs, li, tt.path, filepath.Base(tt.path))

			assert.Equal(t, tt.want, entry.Kind)
			assert.Equal(t, tt.path, entry.FullPath)
			assert.Equal(t, filepath.Base(tt.path), entry.Name)
			assert.Equal(t, tt.target, entry.Target)
		})
	}
}

func TestClassify_MissingSkipsInteractor(t *testing.T) {
	li := &fakeInteractor{links: map[string]string{"/nothing": "/x"}}

	entry := Classify(afero.NewMemMapFs(), li, "/nothing", "nothing")

	assert.Equal(t, types.EntryMissing, entry.Kind)
	assert.Zero(t, li.calls)
}

func TestClassify_ResolveFailureDegrades(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/root/junction", 0755))
	li := &fakeInteractor{
		links:      map[string]string{"/root/junction": "/elsewhere"},
		resolveErr: assert.AnError,
	}

	entry := Classify(fs, li, "/root/junction", "junction")

	assert.Equal(t, types.EntrySymlink, entry.Kind)
	assert.False(t, entry.HasTarget())
}

func TestClassify_RealSymlinks(t *testing.T) {
	if !canSymlink(t) {
		t.Skip("symlinks not available")
	}

	dir := t.TempDir()
	fs := afero.NewOsFs()
	broken := filepath.Join(dir, "broken")
	require.NoError(t, fs.(afero.Symlinker).SymlinkIfPossible(filepath.Join(dir, "gone"), broken))

	li := &fakeInteractor{links: map[string]string{broken: filepath.Join(dir, "gone")}}
	entry := Classify(fs, li, broken, "broken")

	assert.Equal(t, types.EntrySymlink, entry.Kind)
	assert.Equal(t, filepath.Join(dir, "gone"), entry.Target)
}

func canSymlink(t *testing.T) bool {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	err := fs.(afero.Symlinker).SymlinkIfPossible(dir, filepath.Join(dir, "probe"))
	return err == nil
}
