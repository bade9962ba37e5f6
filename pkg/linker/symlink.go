package linker

import (
	"os"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// SymlinkInteractor implements Interactor with native symbolic links
type SymlinkInteractor struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewSymlinkInteractor creates a symlink interactor on fs. Link operations
// need fs to implement afero.Symlinker, as afero.OsFs does.
func NewSymlinkInteractor(fs afero.Fs) *SymlinkInteractor {
	return &SymlinkInteractor{
		fs:     fs,
		logger: logging.GetLogger("linker.symlink"),
	}
}

// CreateLink implements Interactor. isDirectory is irrelevant for POSIX
// symlinks, which are untyped.
func (s *SymlinkInteractor) CreateLink(linkPath, targetPath string, isDirectory bool) (bool, error) {
	if linkPath == "" || targetPath == "" {
		return false, errors.New(errors.ErrInvalidInput, "link path and target path are required").
			WithDetail("path", linkPath).
			WithDetail("target", targetPath)
	}

	linker, ok := s.fs.(afero.Symlinker)
	if !ok {
		return false, errors.Newf(errors.ErrLinkCreate, "filesystem %s does not support symlinks", s.fs.Name()).
			WithDetail("path", linkPath)
	}

	if _, _, err := linker.LstatIfPossible(linkPath); err == nil {
		s.logger.Debug().Str("path", linkPath).Msg("Link path already exists")
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrLinkQuery, "cannot inspect %s", linkPath).
			WithDetail("path", linkPath)
	}

	if err := linker.SymlinkIfPossible(targetPath, linkPath); err != nil {
		return false, errors.Wrapf(err, errors.ErrLinkCreate, "failed to create symlink '%s' -> '%s'", linkPath, targetPath).
			WithDetail("path", linkPath).
			WithDetail("target", targetPath)
	}

	s.logger.Info().
		Str("path", linkPath).
		Str("target", targetPath).
		Bool("directory", isDirectory).
		Msg("Created symlink")
	return true, nil
}

// IsLink implements Interactor
func (s *SymlinkInteractor) IsLink(path string) bool {
	lstater, ok := s.fs.(afero.Lstater)
	if !ok {
		return false
	}
	info, _, err := lstater.LstatIfPossible(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// ResolveLink implements Interactor. The target is returned exactly as
// stored, relative or absolute.
func (s *SymlinkInteractor) ResolveLink(path string) (string, bool, error) {
	if !s.IsLink(path) {
		return "", false, nil
	}

	reader, ok := s.fs.(afero.LinkReader)
	if !ok {
		return "", false, nil
	}

	target, err := reader.ReadlinkIfPossible(path)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrLinkQuery, "failed to read symlink %s", path).
			WithDetail("path", path)
	}
	return target, true, nil
}

var _ Interactor = (*SymlinkInteractor)(nil)
