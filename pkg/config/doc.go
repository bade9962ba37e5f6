// Package config loads linkmirror's settings.
//
// Layers are applied in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: config.toml (or .yaml) in the config directory, or
//     the file named with --config
//  3. LINKMIRROR_ environment variables, e.g. LINKMIRROR_WATCH_DEBOUNCE=1s
//     sets watch.debounce
//  4. explicit overrides, typically command line flags
package config
