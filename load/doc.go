// Package load turns document bytes into a generic value tree.
//
// The package uses an interface-based design with two extension points:
//   - Parser: a parsing strategy producing a tree.Value
//   - Source: retrieves raw document bytes from a location
//
// # Strategy selection
//
// Two Parser implementations ship with this module: the full-grammar YAML
// parser (load/parser/yaml, built on goccy/go-yaml) and a restricted
// line-oriented fallback (load/parser/subset). The full parser is registered
// at init time unless the binary is built with -tags noyaml; Active returns
// whichever strategy the binary carries. Outside the documented subset the
// two strategies may produce different trees; that degradation is deliberate.
//
// # Example
//
//	src := file.NewSource("config.yaml")
//	root, err := load.Document(src, load.Active())
package load
