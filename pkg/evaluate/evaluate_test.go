package evaluate

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/stretchr/testify/assert"
)

func abs(t *testing.T, parts ...string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join(parts...))
	if err != nil {
		t.Fatalf("cannot make %v absolute: %v", parts, err)
	}
	return p
}

func TestEvaluate(t *testing.T) {
	src := abs(t, "/src", "docs")
	dst := abs(t, "/dst", "Docs")

	tests := []struct {
		name          string
		pair          types.MirrorPair
		wantSource    types.Style
		wantTarget    types.Style
		wantIndicator string
		wantTooltip   string
	}{
		{
			name: "folder source with missing target",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryFolder),
				Target: types.NewEntry("Docs", dst, types.EntryMissing),
			},
			wantSource:    types.StyleFolder,
			wantTarget:    types.StyleMissing,
			wantIndicator: types.IndicatorNone,
			wantTooltip:   "Missing",
		},
		{
			name: "file at target is left alone",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryFile),
				Target: types.NewEntry("Docs", dst, types.EntryFile),
			},
			wantSource:    types.StyleFile,
			wantTarget:    types.StyleFile,
			wantIndicator: types.IndicatorNone,
			wantTooltip:   "File",
		},
		{
			name: "matching link",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryFolder),
				Target: types.NewSymlinkEntry("Docs", dst, src),
			},
			wantSource:    types.StyleMatch,
			wantTarget:    types.StyleMatch,
			wantIndicator: types.IndicatorMatch,
			wantTooltip:   "Symlink → " + src,
		},
		{
			name: "match ignores trailing separator and case",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryFolder),
				Target: types.NewSymlinkEntry("Docs", dst, abs(t, "/SRC", "Docs")+string(filepath.Separator)),
			},
			wantSource:    types.StyleMatch,
			wantTarget:    types.StyleMatch,
			wantIndicator: types.IndicatorMatch,
			wantTooltip:   "Symlink → " + abs(t, "/SRC", "Docs") + string(filepath.Separator),
		},
		{
			name: "link elsewhere is a mismatch",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryFolder),
				Target: types.NewSymlinkEntry("Docs", dst, abs(t, "/other")),
			},
			wantSource:    types.StyleMismatch,
			wantTarget:    types.StyleMismatch,
			wantIndicator: types.IndicatorMismatch,
			wantTooltip:   "Symlink → " + abs(t, "/other"),
		},
		{
			name: "orphaned link",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryMissing),
				Target: types.NewSymlinkEntry("Docs", dst, abs(t, "/anything")),
			},
			wantSource:    types.StyleMissing,
			wantTarget:    types.StyleSymlink,
			wantIndicator: types.IndicatorNone,
			wantTooltip:   "Symlink → " + abs(t, "/anything"),
		},
		{
			name: "unknown link target is a mismatch",
			pair: types.MirrorPair{
				Source: types.NewEntry("docs", src, types.EntryFolder),
				Target: types.NewSymlinkEntry("Docs", dst, ""),
			},
			wantSource:    types.StyleMismatch,
			wantTarget:    types.StyleMismatch,
			wantIndicator: types.IndicatorMismatch,
			wantTooltip:   "Symlink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.pair)

			assert.Equal(t, tt.wantSource, got.SourceStyle)
			assert.Equal(t, tt.wantTarget, got.TargetStyle)
			assert.Equal(t, tt.wantIndicator, got.Indicator)
			assert.Equal(t, tt.wantTooltip, got.TargetTooltip)
			assert.Equal(t, Tooltip(tt.pair.Source), got.SourceTooltip)

			// evaluation is a pure function of the pair
			assert.Equal(t, got, Evaluate(tt.pair))
		})
	}
}

func TestLinksTo_RelativeTarget(t *testing.T) {
	dst := abs(t, "/mirror", "Docs")
	link := types.NewSymlinkEntry("Docs", dst, filepath.Join("..", "src", "docs"))

	assert.True(t, LinksTo(link, abs(t, "/src", "docs")))
	assert.False(t, LinksTo(link, abs(t, "/mirror", "src", "docs")))
}

func TestLinksTo_NotALink(t *testing.T) {
	folder := types.NewEntry("docs", abs(t, "/src", "docs"), types.EntryFolder)
	assert.False(t, LinksTo(folder, abs(t, "/src", "docs")))
}

func TestPathsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", abs(t, "/a/b"), abs(t, "/a/b"), true},
		{"trailing separator", abs(t, "/a/b") + string(filepath.Separator), abs(t, "/a/b"), true},
		{"case differs", abs(t, "/A/B"), abs(t, "/a/b"), true},
		{"dot segments", abs(t, "/a") + string(filepath.Separator) + "." + string(filepath.Separator) + "b", abs(t, "/a/b"), true},
		{"different", abs(t, "/a/b"), abs(t, "/a/c"), false},
		{"prefix only", abs(t, "/a/b"), abs(t, "/a/bc"), false},
		{"root", string(filepath.Separator), string(filepath.Separator), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathsEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, PathsEqual(tt.b, tt.a))
		})
	}
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "File", Tooltip(types.NewEntry("f", "/f", types.EntryFile)))
	assert.Equal(t, "Folder", Tooltip(types.NewEntry("d", "/d", types.EntryFolder)))
	assert.Equal(t, "Missing", Tooltip(types.NewEntry("m", "/m", types.EntryMissing)))
	assert.Equal(t, "Symlink → /t", Tooltip(types.NewSymlinkEntry("l", "/l", "/t")))
	assert.Equal(t, "Symlink", Tooltip(types.NewSymlinkEntry("l", "/l", "")))
}
