//go:build windows

package linker

// New returns the interactor for the running platform
func New() Interactor {
	return NewJunctionInteractor()
}
