// Package paths resolves linkmirror's own directories: where its
// configuration, default rule file and state live. It follows the XDG Base
// Directory layout, with environment overrides.
package paths
