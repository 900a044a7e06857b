// Package yaml provides the full-grammar implementation of the load.Parser
// interface, built on the goccy/go-yaml library.
//
// The full grammar covers nested structures, flow collections, quoting, and
// typed scalars. Every scalar is stored in the tree as its canonical string
// form; mapping key order is preserved via ordered-map decoding.
//
// The load package installs this parser as its active strategy at init time
// unless the binary is built with the noyaml tag.
//
// # Example
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse([]byte("title: Demo\nitems: [one, two]"))
package yaml
