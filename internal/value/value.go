package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/yamlite/internal/yamlerr"
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	KindAbsence Kind = iota
	KindText
	KindInteger
	KindFloat
	KindBoolean
	KindSequence
	KindMapping
)

// String returns the lowercase kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAbsence:
		return "absence"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is a key-unique association from text keys to values. Iteration
// order is unspecified; consumers needing determinism sort the keys.
type Mapping map[string]Value

// Value is a closed variant over the seven node kinds. The zero Value is
// absence.
type Value struct {
	kind    Kind
	text    string
	integer int64
	float   float64
	boolean bool
	seq     Sequence
	mapping Mapping
}

// Null returns the absence value.
func Null() Value { return Value{} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int wraps an integer.
func Int(v int64) Value { return Value{kind: KindInteger, integer: v} }

// Float wraps a floating point number.
func Float(v float64) Value { return Value{kind: KindFloat, float: v} }

// Bool wraps a boolean.
func Bool(v bool) Value { return Value{kind: KindBoolean, boolean: v} }

// Seq wraps a sequence. The slice is adopted, not copied.
func Seq(s Sequence) Value { return Value{kind: KindSequence, seq: s} }

// Map wraps a mapping. The map is adopted, not copied.
func Map(m Mapping) Value { return Value{kind: KindMapping, mapping: m} }

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is absence.
func (v Value) IsNull() bool { return v.kind == KindAbsence }

func (v Value) mismatch(expected Kind) error {
	return &yamlerr.TypeMismatchError{Expected: expected.String(), Actual: v.kind.String()}
}

// AsText returns the contained string.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", v.mismatch(KindText)
	}
	return v.text, nil
}

// AsInt returns the contained integer.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInteger {
		return 0, v.mismatch(KindInteger)
	}
	return v.integer, nil
}

// AsFloat returns the contained float.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.float, nil
}

// AsBool returns the contained boolean.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.mismatch(KindBoolean)
	}
	return v.boolean, nil
}

// AsSequence returns the contained sequence.
func (v Value) AsSequence() (Sequence, error) {
	if v.kind != KindSequence {
		return nil, v.mismatch(KindSequence)
	}
	return v.seq, nil
}

// AsMapping returns the contained mapping.
func (v Value) AsMapping() (Mapping, error) {
	if v.kind != KindMapping {
		return nil, v.mismatch(KindMapping)
	}
	return v.mapping, nil
}

// Get looks up a key in a mapping value.
func (v Value) Get(key string) (Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return Value{}, err
	}
	child, ok := m[key]
	if !ok {
		return Value{}, &yamlerr.KeyNotFoundError{Key: key}
	}
	return child, nil
}

// Has reports whether a mapping value contains the key. It returns false
// for non-mapping values.
func (v Value) Has(key string) bool {
	if v.kind != KindMapping {
		return false
	}
	_, ok := v.mapping[key]
	return ok
}

// Index returns the i-th element of a sequence value.
func (v Value) Index(i int) (Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return Value{}, err
	}
	if i < 0 || i >= len(s) {
		return Value{}, &yamlerr.IndexOutOfRangeError{Index: i, Length: len(s)}
	}
	return s[i], nil
}

// Len returns the element count for sequences and mappings and zero for
// every scalar kind.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.mapping)
	default:
		return 0
	}
}

// Copy returns a deep copy of the value. Scalars copy by assignment;
// containers copy every descendant, so mutating the result never touches
// the original.
func (v Value) Copy() Value {
	switch v.kind {
	case KindSequence:
		out := make(Sequence, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Copy()
		}
		return Value{kind: KindSequence, seq: out}
	case KindMapping:
		out := make(Mapping, len(v.mapping))
		for k, e := range v.mapping {
			out[k] = e.Copy()
		}
		return Value{kind: KindMapping, mapping: out}
	default:
		return v
	}
}

// Equal reports deep equality. Sequences compare element-wise in order;
// mappings compare key sets and their values. Kinds never cross-compare.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsence:
		return true
	case KindText:
		return v.text == o.text
	case KindInteger:
		return v.integer == o.integer
	case KindFloat:
		return v.float == o.float
	case KindBoolean:
		return v.boolean == o.boolean
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.mapping) != len(o.mapping) {
			return false
		}
		for k, e := range v.mapping {
			oe, ok := o.mapping[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a single-line debug form: scalars in natural notation
// with text quoted, containers in JSON-like brackets with mapping keys
// sorted. Intended for logs and test failures, not serialization.
func (v Value) String() string {
	switch v.kind {
	case KindAbsence:
		return "null"
	case KindText:
		return strconv.Quote(v.text)
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, e := range v.seq {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		keys := make([]string, 0, len(v.mapping))
		for k := range v.mapping {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.mapping[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.kind.String()
	}
}
