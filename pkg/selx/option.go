package selx

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Option is one dropdown entry: a printable label and the value submitted to
// the form when the entry is chosen. Options are immutable once normalized;
// option lists are replaced wholesale on every update, never mutated in place.
type Option struct {
	Label string
	Value any
}

// Entry is an ordered key-value pair accepted by Normalize. Hosts that build
// options from a mapping and care about iteration order should pass []Entry
// rather than a bare map, since Go maps iterate in random order.
type Entry struct {
	Key   string
	Value any
}

// SerializedValue renders the option value for the hidden form field. Strings
// cross the boundary untouched; everything else is JSON-encoded. The model
// itself always stores the raw value; serialization happens only here, at the
// form boundary.
func (o Option) SerializedValue() (string, error) {
	if s, ok := o.Value.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(o.Value)
	if err != nil {
		return "", fmt.Errorf("selx: serialize value of option %q: %w", o.Label, err)
	}
	return string(b), nil
}

// Normalize converts any of the accepted raw option shapes into a canonical
// option list. Accepted shapes, per element:
//
//   - atomic value (string, number, bool): label is the printed value, value
//     equals the original
//   - two-element pair ([]any{label, value} or [2]any): first element must be
//     printable and becomes the label
//   - map carrying a "label" key and an optional "value" key; a missing
//     "value" defaults to the label
//   - Entry: key becomes the label
//   - Option: passthrough (empty labels rejected)
//
// The top-level raw value may be a single element, a sequence ([]any, []Option
// or []Entry, order preserved), or a bare map without a "label" key, which
// yields one option per key in sorted-key order.
//
// Duplicates by value are preserved; deduplication is the host's business.
// Normalization is all-or-nothing: one malformed entry rejects the entire
// batch with *InvalidOptionShapeError so a partially corrupt list never
// reaches the dropdown.
func Normalize(raw any) ([]Option, error) {
	if raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []Option:
		out := make([]Option, len(v))
		copy(out, v)
		for i := range out {
			if out[i].Label == "" {
				return nil, &InvalidOptionShapeError{Index: i, Shape: "option with empty label"}
			}
		}
		return out, nil
	case []Entry:
		out := make([]Option, 0, len(v))
		for i, e := range v {
			if e.Key == "" {
				return nil, &InvalidOptionShapeError{Index: i, Shape: "entry with empty key"}
			}
			out = append(out, Option{Label: e.Key, Value: e.Value})
		}
		return out, nil
	case []any:
		out := make([]Option, 0, len(v))
		for i, e := range v {
			opt, err := normalizeElement(i, e)
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		}
		return out, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Map:
		if labeled, opt, err := labeledMapOption(0, rv); labeled {
			if err != nil {
				return nil, err
			}
			return []Option{opt}, nil
		}
		return optionsFromMap(rv)
	case reflect.Slice, reflect.Array:
		// Typed sequences other than the ones handled above ([]string, [][2]any, ...).
		out := make([]Option, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			opt, err := normalizeElement(i, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		}
		return out, nil
	}

	opt, err := normalizeElement(0, raw)
	if err != nil {
		return nil, err
	}
	return []Option{opt}, nil
}

// normalizeElement converts a single element of an options batch.
func normalizeElement(index int, raw any) (Option, error) {
	switch v := raw.(type) {
	case Option:
		if v.Label == "" {
			return Option{}, &InvalidOptionShapeError{Index: index, Shape: "option with empty label"}
		}
		return v, nil
	case Entry:
		if v.Key == "" {
			return Option{}, &InvalidOptionShapeError{Index: index, Shape: "entry with empty key"}
		}
		return Option{Label: v.Key, Value: v.Value}, nil
	case nil:
		return Option{}, &InvalidOptionShapeError{Index: index, Shape: "nil element"}
	}

	if label, ok := stringify(raw); ok {
		return Option{Label: label, Value: raw}, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() != 2 {
			return Option{}, &InvalidOptionShapeError{
				Index: index,
				Shape: fmt.Sprintf("%d-element sequence, want a (label, value) pair", rv.Len()),
			}
		}
		label, ok := stringify(rv.Index(0).Interface())
		if !ok {
			return Option{}, &InvalidOptionShapeError{Index: index, Shape: "pair label is not printable"}
		}
		return Option{Label: label, Value: rv.Index(1).Interface()}, nil
	case reflect.Map:
		labeled, opt, err := labeledMapOption(index, rv)
		if !labeled {
			return Option{}, &InvalidOptionShapeError{Index: index, Shape: "map element without a label key"}
		}
		return opt, err
	}

	return Option{}, &InvalidOptionShapeError{Index: index, Shape: fmt.Sprintf("unsupported type %T", raw)}
}

// labeledMapOption interprets a map carrying a "label" key as a single option.
// The first return value reports whether the map has such a key at all.
func labeledMapOption(index int, rv reflect.Value) (bool, Option, error) {
	var labelVal, valueVal any
	var hasLabel, hasValue bool
	for _, k := range rv.MapKeys() {
		ks, ok := stringify(k.Interface())
		if !ok {
			continue
		}
		switch ks {
		case "label":
			labelVal = rv.MapIndex(k).Interface()
			hasLabel = true
		case "value":
			valueVal = rv.MapIndex(k).Interface()
			hasValue = true
		}
	}
	if !hasLabel {
		return false, Option{}, nil
	}
	label, ok := stringify(labelVal)
	if !ok || label == "" {
		return true, Option{}, &InvalidOptionShapeError{Index: index, Shape: "label key is not printable"}
	}
	if !hasValue {
		valueVal = labelVal
	}
	return true, Option{Label: label, Value: valueVal}, nil
}

// optionsFromMap turns a bare map into one option per key. Keys are sorted so
// the result is deterministic; hosts that need insertion order pass []Entry.
func optionsFromMap(rv reflect.Value) ([]Option, error) {
	type kv struct {
		label string
		value any
	}
	pairs := make([]kv, 0, rv.Len())
	for i, k := range rv.MapKeys() {
		label, ok := stringify(k.Interface())
		if !ok {
			return nil, &InvalidOptionShapeError{Index: i, Shape: fmt.Sprintf("map key of type %T is not printable", k.Interface())}
		}
		pairs = append(pairs, kv{label: label, value: rv.MapIndex(k).Interface()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].label < pairs[j].label })

	out := make([]Option, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Option{Label: p.label, Value: p.value})
	}
	return out, nil
}

// stringify prints an atomic value. The second return value is false for
// anything that is not a printable primitive.
func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}
