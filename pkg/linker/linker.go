package linker

// Interactor creates and inspects links on one platform
type Interactor interface {
	// CreateLink creates a link at linkPath pointing to targetPath. It
	// returns false without touching the filesystem when linkPath already
	// exists, and an error when the OS refuses the operation.
	CreateLink(linkPath, targetPath string, isDirectory bool) (bool, error)

	// IsLink reports whether path is a link this interactor understands.
	// It never fails: missing or unreadable paths are not links.
	IsLink(path string) bool

	// ResolveLink returns the stored target of the link at path. ok is false
	// when path is not a recognised link.
	ResolveLink(path string) (target string, ok bool, err error)
}
