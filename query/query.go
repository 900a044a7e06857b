// Package query resolves dot/bracket path expressions against a document
// tree. Resolution cannot fail with an error: a path that does not lead to a
// value reports absence, which callers treat as a successful empty result.
package query

import (
	"strconv"
	"strings"

	"github.com/bitmage/yamlq/tree"
)

// Resolve walks root along path and returns the addressed value. The second
// return value reports whether the path led anywhere; absence covers missing
// keys, out-of-range or malformed indices, and segments applied to a value
// of the wrong kind.
//
// A path is a dot-separated list of segments. Each segment is a mapping key,
// optionally followed by one bracketed sequence index:
//
//	"title"            top-level key
//	"items[1]"         second element of the items sequence
//	"servers[0].host"  key lookup inside an indexed element
//	"[2]"              index into the current value with no key lookup
//
// The empty path and "." address root itself. Empty segments are skipped, so
// "a..b" resolves like "a.b".
func Resolve(root tree.Value, path string) (tree.Value, bool) {
	current := root

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}

		key, indexText, indexed := cutIndex(segment)

		if key != "" {
			mapping, ok := current.(*tree.Mapping)
			if !ok {
				return nil, false
			}

			value, ok := mapping.Get(key)
			if !ok {
				return nil, false
			}

			current = value
		}

		if !indexed {
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(indexText))
		if err != nil || index < 0 {
			return nil, false
		}

		sequence, ok := current.(*tree.Sequence)
		if !ok || index >= sequence.Len() {
			return nil, false
		}

		current = sequence.Items[index]
	}

	return current, true
}

// cutIndex splits a segment into its key part and the text between the first
// bracket pair. A segment counts as indexed only when a ']' follows a '[';
// anything after the closing bracket is ignored.
func cutIndex(segment string) (key, indexText string, indexed bool) {
	open := strings.Index(segment, "[")
	if open < 0 {
		return segment, "", false
	}

	end := strings.Index(segment[open+1:], "]")
	if end < 0 {
		return segment, "", false
	}

	return segment[:open], segment[open+1 : open+1+end], true
}
