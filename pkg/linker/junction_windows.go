//go:build windows

package linker

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

const (
	fsctlSetReparsePoint uint32 = 0x000900A4
	fsctlGetReparsePoint uint32 = 0x000900A8

	errNotAReparsePoint = syscall.Errno(NotAReparsePointCode)
)

// JunctionInteractor implements Interactor with NTFS directory junctions
type JunctionInteractor struct {
	logger zerolog.Logger
}

// NewJunctionInteractor creates a junction interactor
func NewJunctionInteractor() *JunctionInteractor {
	return &JunctionInteractor{
		logger: logging.GetLogger("linker.junction"),
	}
}

// CreateLink implements Interactor. Junctions only link directories: a
// missing or non-directory target yields false. The container directory
// is removed again when the reparse point cannot be attached.
func (j *JunctionInteractor) CreateLink(linkPath, targetPath string, isDirectory bool) (bool, error) {
	if linkPath == "" || targetPath == "" {
		return false, errors.New(errors.ErrInvalidInput, "link path and target path are required").
			WithDetail("path", linkPath).
			WithDetail("target", targetPath)
	}

	if _, err := os.Lstat(linkPath); err == nil {
		j.logger.Debug().Str("path", linkPath).Msg("Link path already exists")
		return false, nil
	}

	info, err := os.Stat(targetPath)
	if err != nil || !info.IsDir() {
		j.logger.Warn().
			Str("path", linkPath).
			Str("target", targetPath).
			Bool("directory", isDirectory).
			Msg("Junction target is not an existing directory")
		return false, nil
	}

	absTarget, err := filepath.Abs(targetPath)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", targetPath).
			WithDetail("target", targetPath)
	}

	record, err := EncodeMountPoint(absTarget)
	if err != nil {
		return false, err
	}

	if err := os.Mkdir(linkPath, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrLinkCreate, "failed to create junction directory %s", linkPath).
			WithDetail("path", linkPath).
			WithDetail("target", targetPath)
	}

	if err := attachMountPoint(linkPath, record); err != nil {
		if rmErr := os.Remove(linkPath); rmErr != nil {
			j.logger.Warn().Err(rmErr).Str("path", linkPath).Msg("Failed to remove junction directory")
		}
		return false, errors.Wrapf(err, errors.ErrLinkCreate, "failed to create junction point for '%s' -> '%s'", linkPath, targetPath).
			WithDetail("path", linkPath).
			WithDetail("target", targetPath)
	}

	j.logger.Info().Str("path", linkPath).Str("target", absTarget).Msg("Created junction")
	return true, nil
}

// IsLink implements Interactor
func (j *JunctionInteractor) IsLink(path string) bool {
	_, ok, err := j.query(path)
	if err != nil {
		j.logger.Debug().Err(err).Str("path", path).Msg("Junction query failed")
		return false
	}
	return ok
}

// ResolveLink implements Interactor
func (j *JunctionInteractor) ResolveLink(path string) (string, bool, error) {
	return j.query(path)
}

func (j *JunctionInteractor) query(path string) (string, bool, error) {
	if !isReparseDirectory(path) {
		return "", false, nil
	}

	h, err := openReparseHandle(path, windows.GENERIC_READ)
	if err != nil {
		return "", false, err
	}
	defer h.Close()

	buf, err := h.getReparsePoint()
	if err != nil {
		if stderrors.Is(err, errNotAReparsePoint) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrLinkQuery, "error when querying status of '%s'", path).
			WithDetail("path", path)
	}

	target, ok, err := DecodeMountPoint(buf)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrLinkQuery, "malformed reparse data on '%s'", path).
			WithDetail("path", path)
	}
	return target, ok, nil
}

// isReparseDirectory avoids opening handles on plain files and folders
func isReparseDirectory(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	p, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 &&
		attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}

func attachMountPoint(linkPath string, record []byte) error {
	h, err := openReparseHandle(linkPath, windows.GENERIC_WRITE)
	if err != nil {
		return err
	}
	defer h.Close()

	return h.setReparsePoint(record)
}

// reparseHandle owns a native handle opened on the reparse point itself
// rather than on what it points to.
type reparseHandle struct {
	handle windows.Handle
	path   string
}

func openReparseHandle(path string, access uint32) (*reparseHandle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid path '%s'", path).
			WithDetail("path", path)
	}

	handle, err := windows.CreateFile(
		p,
		access,
		windows.FILE_SHARE_READ,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_OPEN_REPARSE_POINT|windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrHandleOpen, "can't open file '%s'", path).
			WithDetail("path", path)
	}

	return &reparseHandle{handle: handle, path: path}, nil
}

// Close releases the handle; it is safe to call more than once
func (h *reparseHandle) Close() error {
	if h.handle == windows.InvalidHandle {
		return nil
	}
	err := windows.CloseHandle(h.handle)
	h.handle = windows.InvalidHandle
	return err
}

func (h *reparseHandle) setReparsePoint(record []byte) error {
	var returned uint32
	return windows.DeviceIoControl(
		h.handle,
		fsctlSetReparsePoint,
		&record[0],
		uint32(len(record)),
		nil,
		0,
		&returned,
		nil,
	)
}

func (h *reparseHandle) getReparsePoint() ([]byte, error) {
	buf := make([]byte, MaxReparseBufferSize)
	var returned uint32
	err := windows.DeviceIoControl(
		h.handle,
		fsctlGetReparsePoint,
		nil,
		0,
		&buf[0],
		uint32(len(buf)),
		&returned,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return buf[:returned], nil
}

var _ Interactor = (*JunctionInteractor)(nil)
