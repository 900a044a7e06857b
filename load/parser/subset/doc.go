// Package subset provides the fallback implementation of the load.Parser
// interface: a line-oriented reader for a restricted YAML subset that needs
// no grammar library.
//
// # Supported input
//
// Exactly two structural levels are recognized:
//
//   - top-level "key: value" lines, stored as string scalars
//   - top-level "key:" lines with no value, opening a section
//   - indented "key:" lines inside a section, opening a list
//   - "- item" lines, appended to the most recently opened list
//
// Blank lines and lines whose first non-space character is '#' are skipped.
// Everything else, including nested mappings, indented scalar values, and
// deeper list nesting, is silently ignored. This degradation is deliberate:
// inputs outside the subset produce a best-effort tree, never an error, and
// may disagree with the full-grammar parser.
//
// # Example
//
//	parser := subset.NewParser()
//	root, _ := parser.Parse([]byte("title: Demo\nitems:\n  list:\n    - one"))
package subset
