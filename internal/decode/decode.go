package decode

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/yamlite/internal/ctxlog"
	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

// ToCty converts a document value into its corresponding cty.Value.
// Scalars map to cty primitives, sequences to tuples, and mappings to
// objects, so heterogeneous containers survive the trip unchanged.
// Values without a kind become typeless cty nulls.
func ToCty(v value.Value) cty.Value {
	switch v.Kind() {
	case value.KindText:
		s, _ := v.AsText()
		return cty.StringVal(s)
	case value.KindInteger:
		n, _ := v.AsInt()
		return cty.NumberIntVal(n)
	case value.KindFloat:
		f, _ := v.AsFloat()
		return cty.NumberFloatVal(f)
	case value.KindBoolean:
		b, _ := v.AsBool()
		return cty.BoolVal(b)
	case value.KindSequence:
		seq, _ := v.AsSequence()
		if len(seq) == 0 {
			return cty.EmptyTupleVal
		}
		elems := make([]cty.Value, len(seq))
		for i, item := range seq {
			elems[i] = ToCty(item)
		}
		return cty.TupleVal(elems)
	case value.KindMapping:
		mapping, _ := v.AsMapping()
		if len(mapping) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(mapping))
		for key, item := range mapping {
			attrs[key] = ToCty(item)
		}
		return cty.ObjectVal(attrs)
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}

// Unmarshal populates a Go value from a document value. Struct fields
// are matched by their `yaml` tag when present, falling back to the
// lowercased field name. Mapping keys with no matching field are
// ignored, and fields whose key is absent keep their zero value.
func Unmarshal(ctx context.Context, v value.Value, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	return decodeValue(ctx, v, rv.Elem())
}

func decodeValue(ctx context.Context, v value.Value, rv reflect.Value) error {
	if v.IsNull() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(ctx, v, rv.Elem())
	case reflect.Struct:
		return decodeStruct(ctx, v, rv)
	case reflect.Slice:
		if isStructSlice(rv.Type()) {
			return decodeStructSlice(ctx, v, rv)
		}
	}
	return decodeLeaf(ctx, v, rv)
}

// decodeStruct binds mapping entries onto struct fields one at a time,
// which keeps unknown document keys harmless.
func decodeStruct(ctx context.Context, v value.Value, rv reflect.Value) error {
	structType := rv.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := rv.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		lookupName := strings.ToLower(field.Name)
		if tag := field.Tag.Get("yaml"); tag != "" {
			if name := strings.Split(tag, ",")[0]; name != "" {
				lookupName = name
			}
		}
		if lookupName == "-" {
			continue
		}

		entry, err := v.Get(lookupName)
		if err != nil {
			var keyErr *yamlerr.KeyNotFoundError
			if errors.As(err, &keyErr) {
				continue
			}
			return err
		}

		if err := decodeValue(ctx, entry, fieldVal); err != nil {
			return fmt.Errorf("failed to decode field '%s': %w", lookupName, err)
		}
	}
	return nil
}

func isStructSlice(t reflect.Type) bool {
	if t.Kind() != reflect.Slice {
		return false
	}
	elem := t.Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	return elem.Kind() == reflect.Struct
}

func decodeStructSlice(ctx context.Context, v value.Value, rv reflect.Value) error {
	seq, err := v.AsSequence()
	if err != nil {
		return err
	}

	out := reflect.MakeSlice(rv.Type(), len(seq), len(seq))
	for i, item := range seq {
		if err := decodeValue(ctx, item, out.Index(i)); err != nil {
			return fmt.Errorf("failed to decode element %d: %w", i, err)
		}
	}
	rv.Set(out)
	return nil
}

// decodeLeaf handles the conversion and decoding of a document value
// into a plain Go target via cty.
func decodeLeaf(ctx context.Context, v value.Value, rv reflect.Value) error {
	logger := ctxlog.FromContext(ctx)
	cv := ToCty(v)
	targetPtr := rv.Addr().Interface()

	impliedType, err := gocty.ImpliedType(rv.Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", rv.Type().String(), "error", err)
		return gocty.FromCtyValue(cv, targetPtr)
	}

	convertedVal, err := convert.Convert(cv, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", cv.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !cv.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", cv.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, targetPtr)
}
