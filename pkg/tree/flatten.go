package tree

// DefaultChildrenKey is the field FlattenMaps reads children from unless
// WithChildrenKey overrides it.
const DefaultChildrenKey = "children_list"

type options struct {
	data        []map[string]any
	childrenKey string
}

// Option configures FlattenMaps.
type Option func(*options)

// WithData sets the root records to flatten.
func WithData(data []map[string]any) Option {
	return func(o *options) {
		o.data = data
	}
}

// WithChildrenKey sets the field holding child records. Empty keys are ignored.
func WithChildrenKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.childrenKey = key
		}
	}
}

// FlattenMaps flattens untyped records in depth-first order with children
// before their parent. Each emitted record is a shallow copy of the input
// without the children key; the input is not modified.
//
// A missing children field, a nil value, or a value that is not a list of
// records is treated as having no children. List entries that are not records
// are skipped.
func FlattenMaps(opts ...Option) []map[string]any {
	o := &options{childrenKey: DefaultChildrenKey}
	for _, opt := range opts {
		opt(o)
	}

	flat := make([]map[string]any, 0, len(o.data))
	var push func([]map[string]any)
	push = func(level []map[string]any) {
		for _, item := range level {
			if item == nil {
				continue
			}
			if children := childRecords(item[o.childrenKey]); len(children) > 0 {
				push(children)
			}
			flat = append(flat, omit(item, o.childrenKey))
		}
	}
	push(o.data)
	return flat
}

func childRecords(v any) []map[string]any {
	switch children := v.(type) {
	case []map[string]any:
		return children
	case []any:
		out := make([]map[string]any, 0, len(children))
		for _, c := range children {
			if m, ok := c.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func omit(m map[string]any, key string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k != key {
			out[k] = v
		}
	}
	return out
}
