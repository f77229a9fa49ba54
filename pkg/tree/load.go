package tree

import (
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ParseYAML reads a YAML or JSON document whose root is a list of records, or
// a single record, and returns the root records. Nested mappings with
// non-string keys are converted to string keys.
func ParseYAML(r io.Reader) ([]map[string]any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []map[string]any{}, nil
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	switch root := normalize(doc).(type) {
	case nil:
		return []map[string]any{}, nil
	case map[string]any:
		return []map[string]any{root}, nil
	case []any:
		records := make([]map[string]any, 0, len(root))
		for i, item := range root {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item %d is %T, expected a mapping", ErrInvalidDocument, i, item)
			}
			records = append(records, m)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: root is %T, expected a sequence of mappings", ErrInvalidDocument, root)
	}
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

// Decode converts flattened records into values of T using mapstructure tags.
// Input is weakly typed, so "42" decodes into an int field.
func Decode[T any](records []map[string]any) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		var v T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &v,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		if err := dec.Decode(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrDecode, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
