package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmage/yamlq/tree"
)

func TestValue_Kind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value tree.Value
		want  tree.Kind
	}{
		{
			name:  "scalar",
			value: tree.NewScalar("hello"),
			want:  tree.KindScalar,
		},
		{
			name:  "sequence",
			value: tree.NewSequence(),
			want:  tree.KindSequence,
		},
		{
			name:  "mapping",
			value: tree.NewMapping(),
			want:  tree.KindMapping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.value.Kind())
		})
	}
}

func TestSequence_Append_PreservesOrder(t *testing.T) {
	t.Parallel()

	seq := tree.NewSequence()
	seq.Append(tree.NewScalar("one"))
	seq.Append(tree.NewScalar("two"))
	seq.Append(tree.NewScalar("three"))

	require.Equal(t, 3, seq.Len())

	got := make([]string, 0, seq.Len())

	for _, item := range seq.Items {
		scalar, ok := item.(*tree.Scalar)
		require.True(t, ok)

		got = append(got, scalar.Text)
	}

	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestNewSequence_WithItems(t *testing.T) {
	t.Parallel()

	seq := tree.NewSequence(tree.NewScalar("a"), tree.NewScalar("b"))

	assert.Equal(t, 2, seq.Len())
}

func TestMapping_Set_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	mapping := tree.NewMapping()
	mapping.Set("charlie", tree.NewScalar("3"))
	mapping.Set("alpha", tree.NewScalar("1"))
	mapping.Set("bravo", tree.NewScalar("2"))

	require.Equal(t, 3, mapping.Len())

	keys := make([]string, 0, mapping.Len())

	for _, entry := range mapping.Entries() {
		keys = append(keys, entry.Key)
	}

	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, keys)
}

func TestMapping_Set_LastWriteWins(t *testing.T) {
	t.Parallel()

	mapping := tree.NewMapping()
	mapping.Set("name", tree.NewScalar("first"))
	mapping.Set("other", tree.NewScalar("x"))
	mapping.Set("name", tree.NewScalar("second"))

	require.Equal(t, 2, mapping.Len())

	value, ok := mapping.Get("name")
	require.True(t, ok)

	scalar, ok := value.(*tree.Scalar)
	require.True(t, ok)
	assert.Equal(t, "second", scalar.Text)

	// The overwritten key keeps its original position.
	assert.Equal(t, "name", mapping.Entries()[0].Key)
}

func TestMapping_Get_MissingKey(t *testing.T) {
	t.Parallel()

	mapping := tree.NewMapping()
	mapping.Set("present", tree.NewScalar("yes"))

	value, ok := mapping.Get("absent")

	assert.False(t, ok)
	assert.Nil(t, value)
}
