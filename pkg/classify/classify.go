// Package classify turns a filesystem path into a ClassifiedEntry.
//
// Link detection runs before attribute inspection: a junction is itself a
// directory, and a symlink to a folder stats as one.
package classify

import (
	"os"

	"github.com/arthur-debert/linkmirror/pkg/linker"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/spf13/afero"
)

// Classify reports what exists at path. It never fails: link resolution
// faults degrade to a symlink with an unknown target, and other inspection
// faults are treated as nothing being there.
func Classify(fs afero.Fs, li linker.Interactor, path, name string) types.ClassifiedEntry {
	logger := logging.GetLogger("classify")

	info, err := lstat(fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", path).Msg("Cannot inspect path, treating as missing")
		}
		return types.NewEntry(name, path, types.EntryMissing)
	}

	if li.IsLink(path) {
		target, ok, err := li.ResolveLink(path)
		if err != nil || !ok {
			logger.Debug().Err(err).Str("path", path).Msg("Link target unknown")
			return types.NewSymlinkEntry(name, path, "")
		}
		return types.NewSymlinkEntry(name, path, target)
	}

	if info.IsDir() {
		return types.NewEntry(name, path, types.EntryFolder)
	}
	return types.NewEntry(name, path, types.EntryFile)
}

// lstat inspects path without following a final link when fs allows it, so
// broken links are still seen as present.
func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
