// Package linker creates, detects and resolves filesystem links.
//
// A single Interactor contract has two platform bodies:
//
//   - SymlinkInteractor, used on POSIX systems, wraps the native symlink and
//     readlink primitives through afero's link capabilities. Link targets are
//     returned verbatim.
//   - JunctionInteractor, used on Windows, builds NTFS mount point reparse
//     records by hand and attaches or reads them with DeviceIoControl, so
//     that directory links can be created without elevation.
//
// New selects the body for the running platform once; callers never branch
// on the platform themselves.
//
// Expected negative outcomes (path missing, not a link, link path already
// taken) are reported as booleans. Native failures are returned as coded
// errors carrying the offending paths.
package linker
