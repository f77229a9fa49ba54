package compare

import "reflect"

// StrictEqual compares x and y without descending into them.
//
// Values of different dynamic types are never equal. Comparable values are
// compared with ==. Maps, slices, funcs and channels are equal only when they
// share the same underlying pointer (slices must also have the same length).
// Structs and arrays holding such values are compared by identity of those
// fields the same way, never deeply. StrictEqual never panics.
func StrictEqual(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return strictEqual(reflect.ValueOf(x), reflect.ValueOf(y))
}

func strictEqual(x, y reflect.Value) bool {
	if x.Type() != y.Type() {
		return false
	}

	switch x.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return x.IsNil() == y.IsNil() && x.Pointer() == y.Pointer()
	case reflect.Slice:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		return x.Pointer() == y.Pointer() && x.Len() == y.Len()
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		return strictEqual(x.Elem(), y.Elem())
	case reflect.Array:
		for i := range x.Len() {
			if !strictEqual(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range x.NumField() {
			if !strictEqual(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	}

	if x.CanInterface() && y.CanInterface() {
		return x.Interface() == y.Interface()
	}
	return x.Equal(y)
}
