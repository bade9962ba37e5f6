package mirror

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/evaluate"
	"github.com/spf13/afero"
)

// IsNotSubdirectory reports whether child lies outside parent. Both paths
// are made absolute first; on Windows the comparison ignores case. A path
// is not considered inside itself.
func IsNotSubdirectory(parent, child string) bool {
	fullParent := absClean(parent)
	fullChild := absClean(child)

	if runtime.GOOS == "windows" {
		fullParent = strings.ToLower(fullParent)
		fullChild = strings.ToLower(fullChild)
	}

	if !strings.HasSuffix(fullParent, string(os.PathSeparator)) {
		fullParent += string(os.PathSeparator)
	}
	return !strings.HasPrefix(fullChild, fullParent)
}

// ValidateSetup checks that links can be created under targetRoot: a
// platform must be selected, and the target root must be an existing
// directory that is neither the source root nor inside it.
func ValidateSetup(fs afero.Fs, platformSelected bool, sourceRoot, targetRoot string) error {
	if !platformSelected {
		return errors.New(errors.ErrSetupInvalid, "no platform selected")
	}
	if strings.TrimSpace(targetRoot) == "" {
		return errors.New(errors.ErrSetupInvalid, "no target folder selected")
	}

	isDir, err := afero.DirExists(fs, targetRoot)
	if err != nil || !isDir {
		return errors.Newf(errors.ErrSetupInvalid, "target folder %s does not exist", targetRoot).
			WithDetail("target", targetRoot)
	}

	if evaluate.PathsEqual(sourceRoot, targetRoot) {
		return errors.New(errors.ErrSetupInvalid, "target folder is the source folder").
			WithDetail("source", sourceRoot).
			WithDetail("target", targetRoot)
	}

	if !IsNotSubdirectory(sourceRoot, targetRoot) {
		return errors.Newf(errors.ErrSetupInvalid, "target folder %s is inside the source folder", targetRoot).
			WithDetail("source", sourceRoot).
			WithDetail("target", targetRoot)
	}
	return nil
}

func absClean(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
