//go:build !noyaml

package load

import (
	yamlparser "github.com/bitmage/yamlq/load/parser/yaml"
)

// The full-grammar YAML strategy ships by default. Building with -tags noyaml
// leaves the grammar library out of the binary entirely; Active then falls
// back to the subset parser.
//
//nolint:gochecknoinits // strategy registration must happen before any load.
func init() {
	RegisterFull(yamlparser.NewParser())
}
