package decode

import (
	"encoding/json"

	"github.com/vk/yamlite/internal/value"
)

// ToInterface converts a document value to a plain Go interface{} tree:
// map[string]any for mappings, []any for sequences, and native scalar
// types for leaves. Values without a kind become nil.
func ToInterface(v value.Value) any {
	switch v.Kind() {
	case value.KindText:
		s, _ := v.AsText()
		return s
	case value.KindInteger:
		n, _ := v.AsInt()
		return n
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f
	case value.KindBoolean:
		b, _ := v.AsBool()
		return b
	case value.KindSequence:
		seq, _ := v.AsSequence()
		out := make([]any, len(seq))
		for i, item := range seq {
			out[i] = ToInterface(item)
		}
		return out
	case value.KindMapping:
		mapping, _ := v.AsMapping()
		out := make(map[string]any, len(mapping))
		for key, item := range mapping {
			out[key] = ToInterface(item)
		}
		return out
	default:
		return nil
	}
}

// ToJSON renders a document value as compact JSON. Mapping keys come
// out sorted, so the encoding is deterministic.
func ToJSON(v value.Value) ([]byte, error) {
	return json.Marshal(ToInterface(v))
}

// ToJSONIndent renders a document value as indented JSON suitable for
// human-facing output.
func ToJSONIndent(v value.Value) ([]byte, error) {
	return json.MarshalIndent(ToInterface(v), "", "  ")
}
