package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmage/yamlq/load/parser/yaml"
	"github.com/bitmage/yamlq/tree"
)

func scalarText(t *testing.T, v tree.Value) string {
	t.Helper()

	scalar, ok := v.(*tree.Scalar)
	require.True(t, ok, "expected scalar, got %s", v.Kind())

	return scalar.Text
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	parser := yaml.NewParser()

	require.NotNil(t, parser)
	assert.Equal(t, "goccy/go-yaml", parser.Name())
}

func TestParser_Parse_Document(t *testing.T) {
	t.Parallel()

	input := "title: Demo\n" +
		"items:\n" +
		"  - one\n" +
		"  - two\n" +
		"server:\n" +
		"  host: localhost\n" +
		"  port: 8080\n"

	root, err := yaml.NewParser().Parse([]byte(input))
	require.NoError(t, err)

	mapping, ok := root.(*tree.Mapping)
	require.True(t, ok)
	require.Equal(t, 3, mapping.Len())

	title, ok := mapping.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Demo", scalarText(t, title))

	items, ok := mapping.Get("items")
	require.True(t, ok)

	sequence, ok := items.(*tree.Sequence)
	require.True(t, ok)
	require.Equal(t, 2, sequence.Len())
	assert.Equal(t, "one", scalarText(t, sequence.Items[0]))
	assert.Equal(t, "two", scalarText(t, sequence.Items[1]))

	server, ok := mapping.Get("server")
	require.True(t, ok)

	nested, ok := server.(*tree.Mapping)
	require.True(t, ok)

	port, ok := nested.Get("port")
	require.True(t, ok)
	assert.Equal(t, "8080", scalarText(t, port))
}

func TestParser_Parse_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	input := "zebra: 1\napple: 2\nmango: 3\n"

	root, err := yaml.NewParser().Parse([]byte(input))
	require.NoError(t, err)

	mapping, ok := root.(*tree.Mapping)
	require.True(t, ok)

	keys := make([]string, 0, mapping.Len())

	for _, entry := range mapping.Entries() {
		keys = append(keys, entry.Key)
	}

	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestParser_Parse_ScalarForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "string",
			input: "v: hello",
			want:  "hello",
		},
		{
			name:  "quoted string",
			input: `v: "quoted value"`,
			want:  "quoted value",
		},
		{
			name:  "integer",
			input: "v: 42",
			want:  "42",
		},
		{
			name:  "negative integer",
			input: "v: -7",
			want:  "-7",
		},
		{
			name:  "float",
			input: "v: 3.5",
			want:  "3.5",
		},
		{
			name:  "boolean",
			input: "v: true",
			want:  "true",
		},
		{
			name:  "null",
			input: "v: null",
			want:  "",
		},
		{
			name:  "empty value",
			input: "v:",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := yaml.NewParser().Parse([]byte(tt.input))
			require.NoError(t, err)

			mapping, ok := root.(*tree.Mapping)
			require.True(t, ok)

			value, ok := mapping.Get("v")
			require.True(t, ok)
			assert.Equal(t, tt.want, scalarText(t, value))
		})
	}
}

func TestParser_Parse_DuplicateKeysLastWins(t *testing.T) {
	t.Parallel()

	input := "zebra: 1\napple: 2\nzebra: 3\nmango: 4\n"

	root, err := yaml.NewParser().Parse([]byte(input))
	require.NoError(t, err)

	mapping, ok := root.(*tree.Mapping)
	require.True(t, ok)
	require.Equal(t, 3, mapping.Len())

	keys := make([]string, 0, mapping.Len())
	values := make([]string, 0, mapping.Len())

	for _, entry := range mapping.Entries() {
		keys = append(keys, entry.Key)
		values = append(values, scalarText(t, entry.Value))
	}

	// The duplicate keeps its first position and takes the last value.
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
	assert.Equal(t, []string{"3", "2", "4"}, values)
}

func TestParser_Parse_FlowCollections(t *testing.T) {
	t.Parallel()

	root, err := yaml.NewParser().Parse([]byte("items: [one, two]\nmeta: {a: 1}\n"))
	require.NoError(t, err)

	mapping, ok := root.(*tree.Mapping)
	require.True(t, ok)

	items, ok := mapping.Get("items")
	require.True(t, ok)

	sequence, ok := items.(*tree.Sequence)
	require.True(t, ok)
	assert.Equal(t, 2, sequence.Len())

	meta, ok := mapping.Get("meta")
	require.True(t, ok)

	inner, ok := meta.(*tree.Mapping)
	require.True(t, ok)

	a, ok := inner.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", scalarText(t, a))
}

func TestParser_Parse_SequenceRoot(t *testing.T) {
	t.Parallel()

	root, err := yaml.NewParser().Parse([]byte("- one\n- two\n"))
	require.NoError(t, err)

	sequence, ok := root.(*tree.Sequence)
	require.True(t, ok)
	assert.Equal(t, 2, sequence.Len())
}

func TestParser_Parse_ScalarRoot(t *testing.T) {
	t.Parallel()

	root, err := yaml.NewParser().Parse([]byte("just a string\n"))
	require.NoError(t, err)

	assert.Equal(t, "just a string", scalarText(t, root))
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n", "   \n  \n"} {
		root, err := yaml.NewParser().Parse([]byte(input))

		require.NoError(t, err)
		assert.Equal(t, "", scalarText(t, root))
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	root, err := yaml.NewParser().Parse([]byte("key: [unclosed\n"))

	require.Error(t, err)
	assert.Nil(t, root)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}
