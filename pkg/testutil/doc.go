// Package testutil provides on-disk fixtures for linkmirror tests.
//
// Tree lays out source and target folders under t.TempDir(); Isolate points
// every directory linkmirror reads or writes at a private location so tests
// never see the user's configuration.
package testutil
