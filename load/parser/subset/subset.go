package subset

import (
	"strings"
	"unicode"

	"github.com/bitmage/yamlq/tree"
)

// Parser reads the restricted line-oriented subset documented in doc.go. It
// is the strategy used when no full-grammar parser is compiled in.
type Parser struct{}

// NewParser creates a new subset parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Name identifies the strategy.
func (p *Parser) Name() string { return "subset" }

// Parse reads data line by line into a value tree. The root is always a
// mapping. Input outside the documented subset is silently ignored, so Parse
// never fails.
func (p *Parser) Parse(data []byte) (tree.Value, error) {
	root := tree.NewMapping()

	// section is the mapping of the most recent empty-value top-level key;
	// list is the sequence receiving "- " items, when one is open.
	var (
		section *tree.Mapping
		list    *tree.Sequence
	)

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		if line == "" {
			continue
		}

		content := strings.TrimSpace(line)
		if strings.HasPrefix(content, "#") {
			continue
		}

		if item, ok := strings.CutPrefix(content, "- "); ok {
			if list != nil {
				list.Append(tree.NewScalar(item))
			}

			continue
		}

		key, value, found := strings.Cut(content, ":")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))

		switch {
		case indent == 0:
			// A new top-level entry closes any open list.
			list = nil

			if value == "" {
				placeholder := tree.NewMapping()
				root.Set(key, placeholder)
				section = placeholder
			} else {
				root.Set(key, tree.NewScalar(value))
				section = nil
			}
		case section != nil && value == "":
			opened := tree.NewSequence()
			section.Set(key, opened)
			list = opened
		}
	}

	return root, nil
}
