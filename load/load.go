package load

import (
	"fmt"
	"log/slog"

	"github.com/bitmage/yamlq/load/parser/subset"
	"github.com/bitmage/yamlq/tree"
)

// Parser is a document-parsing strategy. Parse produces a value tree from
// raw document bytes; Name identifies the strategy in logs.
type Parser interface {
	Parse(data []byte) (tree.Value, error)
	Name() string
}

// Source supplies raw document bytes from some location, such as a file.
type Source interface {
	Fetch() ([]byte, error)
}

//nolint:gochecknoglobals // strategy registry, written once at init time.
var fullParser Parser

// RegisterFull installs p as the full-grammar parsing strategy. It is called
// from an init function that the noyaml build tag compiles out; see Active.
func RegisterFull(p Parser) {
	fullParser = p
}

// Active returns the parsing strategy this binary carries: the full-grammar
// parser when one was registered at init time, otherwise the restricted
// subset fallback.
func Active() Parser {
	if fullParser != nil {
		return fullParser
	}

	return subset.NewParser()
}

// Document fetches a document from src and parses it with parser into a
// value tree.
func Document(src Source, parser Parser) (tree.Value, error) {
	data, err := src.Fetch()
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	slog.Debug("document loaded",
		slog.String("parser", parser.Name()),
		slog.Int("bytes", len(data)),
	)

	return root, nil
}
