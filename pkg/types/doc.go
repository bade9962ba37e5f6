// Package types defines the core data model shared by the classifier, the
// evaluator and the mirror driver: classified filesystem entries, mapping
// rules, mirror pairs and their evaluated display state.
package types
