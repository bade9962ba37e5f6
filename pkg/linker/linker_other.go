//go:build !windows

package linker

import "github.com/spf13/afero"

// New returns the interactor for the running platform
func New() Interactor {
	return NewSymlinkInteractor(afero.NewOsFs())
}
