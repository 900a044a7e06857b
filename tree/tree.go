// Package tree defines the generic value tree produced by document parsing:
// a closed union of scalars, ordered sequences, and key-ordered mappings.
package tree

// Kind identifies the variant of a Value.
type Kind string

// The three variants a Value can take.
const (
	KindScalar   Kind = "scalar"
	KindSequence Kind = "sequence"
	KindMapping  Kind = "mapping"
)

// Value is a single node of a parsed document: a *Scalar, a *Sequence, or a
// *Mapping. The union is closed, so a type switch over the three variants is
// exhaustive.
type Value interface {
	Kind() Kind

	isValue()
}

// Scalar is a leaf value. Parsers store every scalar in string form; the
// empty string doubles as the explicit absent/empty case (a YAML null, an
// empty document).
type Scalar struct {
	Text string
}

// NewScalar returns a scalar leaf holding text.
func NewScalar(text string) *Scalar {
	return &Scalar{Text: text}
}

// Kind returns KindScalar.
func (s *Scalar) Kind() Kind { return KindScalar }

func (s *Scalar) isValue() {}

// Sequence is an ordered list of values. Order is significant and preserved.
type Sequence struct {
	Items []Value
}

// NewSequence returns a sequence holding items in the given order.
func NewSequence(items ...Value) *Sequence {
	return &Sequence{Items: items}
}

// Kind returns KindSequence.
func (s *Sequence) Kind() Kind { return KindSequence }

func (s *Sequence) isValue() {}

// Append adds v to the end of the sequence.
func (s *Sequence) Append(v Value) {
	s.Items = append(s.Items, v)
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.Items) }

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an insertion-ordered collection of unique string keys. Lookup is
// by key; iteration follows insertion order so rendered output stays
// deterministic.
type Mapping struct {
	entries []Entry
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{}
}

// Kind returns KindMapping.
func (m *Mapping) Kind() Kind { return KindMapping }

func (m *Mapping) isValue() {}

// Set stores v under key. A key already present keeps its position and takes
// the new value; the last write wins.
func (m *Mapping) Set(key string, v Value) {
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries[i].Value = v

			return
		}
	}

	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	for _, entry := range m.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}

	return nil, false
}

// Entries returns the mapping's entries in insertion order.
func (m *Mapping) Entries() []Entry {
	return m.entries
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.entries) }
