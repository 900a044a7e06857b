// Package render turns resolved document values into terminal text.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/bitmage/yamlq/tree"
)

// Text renders v for terminal display. Scalars print verbatim. A sequence
// prints one line per element: scalar elements as "- <text>" bullets and
// mapping elements as a "---" separator followed by one "key: value" line
// per entry. A standalone mapping prints as two-space-indented JSON with
// keys in document order. A nil value renders as the empty string.
func Text(v tree.Value) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case *tree.Scalar:
		return value.Text, nil
	case *tree.Sequence:
		return sequenceText(value)
	case *tree.Mapping:
		return encodeJSON(value, jsontext.WithIndent("  "))
	default:
		return "", fmt.Errorf("unsupported value kind %q", v.Kind())
	}
}

func sequenceText(sequence *tree.Sequence) (string, error) {
	lines := make([]string, 0, sequence.Len())

	for _, item := range sequence.Items {
		mapping, ok := item.(*tree.Mapping)
		if !ok {
			text, err := inlineText(item)
			if err != nil {
				return "", err
			}

			lines = append(lines, "- "+text)

			continue
		}

		lines = append(lines, "---")

		for _, entry := range mapping.Entries() {
			text, err := inlineText(entry.Value)
			if err != nil {
				return "", err
			}

			lines = append(lines, entry.Key+": "+text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// inlineText renders a value destined for a single line: scalars verbatim,
// anything deeper as compact JSON.
func inlineText(v tree.Value) (string, error) {
	if scalar, ok := v.(*tree.Scalar); ok {
		return scalar.Text, nil
	}

	return encodeJSON(v)
}

func encodeJSON(v tree.Value, opts ...jsontext.Options) (string, error) {
	var buf bytes.Buffer

	encoder := jsontext.NewEncoder(&buf, opts...)

	if err := writeValue(encoder, v); err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}

	// The encoder terminates the top-level value with a newline.
	return strings.TrimRight(buf.String(), "\n"), nil
}

// writeValue emits v as a token stream. Scalar leaves become JSON strings;
// mapping entries keep their insertion order.
func writeValue(encoder *jsontext.Encoder, v tree.Value) error {
	switch value := v.(type) {
	case *tree.Scalar:
		return encoder.WriteToken(jsontext.String(value.Text))
	case *tree.Sequence:
		if err := encoder.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}

		for _, item := range value.Items {
			if err := writeValue(encoder, item); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndArray)
	case *tree.Mapping:
		if err := encoder.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}

		for _, entry := range value.Entries() {
			if err := encoder.WriteToken(jsontext.String(entry.Key)); err != nil {
				return err
			}

			if err := writeValue(encoder, entry.Value); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("unsupported value kind %q", v.Kind())
	}
}
