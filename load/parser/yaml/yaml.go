package yaml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/bitmage/yamlq/tree"
)

// Parser implements the full-grammar strategy for the load.Parser interface.
// Decoding uses ordered maps so document key order survives into the tree.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Name identifies the strategy.
func (p *Parser) Name() string { return "goccy/go-yaml" }

// Parse parses a complete YAML document into a value tree. Whitespace-only
// input yields the empty scalar rather than an error. Duplicate mapping keys
// are legal input; the last value for a key wins.
func (p *Parser) Parse(data []byte) (tree.Value, error) {
	if strings.TrimSpace(string(data)) == "" {
		return tree.NewScalar(""), nil
	}

	var doc any

	opts := []yaml.DecodeOption{
		yaml.UseOrderedMap(),
		yaml.AllowDuplicateMapKey(),
	}

	if err := yaml.UnmarshalWithOptions(data, &doc, opts...); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return convert(doc), nil
}

// convert maps the decoded document onto the tree union. Scalars take their
// canonical string form; a YAML null becomes the empty scalar.
func convert(v any) tree.Value {
	switch value := v.(type) {
	case nil:
		return tree.NewScalar("")
	case yaml.MapSlice:
		mapping := tree.NewMapping()

		for _, item := range value {
			mapping.Set(fmt.Sprint(item.Key), convert(item.Value))
		}

		return mapping
	case []any:
		sequence := tree.NewSequence()

		for _, item := range value {
			sequence.Append(convert(item))
		}

		return sequence
	case string:
		return tree.NewScalar(value)
	case bool:
		return tree.NewScalar(strconv.FormatBool(value))
	case int:
		return tree.NewScalar(strconv.Itoa(value))
	case int64:
		return tree.NewScalar(strconv.FormatInt(value, 10))
	case uint64:
		return tree.NewScalar(strconv.FormatUint(value, 10))
	case float64:
		return tree.NewScalar(strconv.FormatFloat(value, 'g', -1, 64))
	default:
		return tree.NewScalar(fmt.Sprint(value))
	}
}
