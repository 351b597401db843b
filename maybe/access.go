package maybe

import (
	"reflect"
)

// Get looks key up in v and returns Absent for any miss. Maps are indexed by
// key, slices, arrays and strings by integer position (negative counts from
// the end), and structs by exported field name. Pointers are followed.
func Get(v, key any) any {
	if IsAbsent(v) || IsAbsent(key) {
		return Absent
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Absent
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		k := reflect.ValueOf(key)
		kt := rv.Type().Key()
		if !k.Type().AssignableTo(kt) {
			if !k.Type().ConvertibleTo(kt) || k.Kind() != kt.Kind() {
				return Absent
			}
			k = k.Convert(kt)
		}
		if !k.Comparable() {
			return Absent
		}
		got := rv.MapIndex(k)
		if !got.IsValid() {
			return Absent
		}
		return Maybe(got.Interface())

	case reflect.Slice, reflect.Array:
		i, ok := position(key, rv.Len())
		if !ok {
			return Absent
		}
		return Maybe(rv.Index(i).Interface())

	case reflect.String:
		runes := []rune(rv.String())
		i, ok := position(key, len(runes))
		if !ok {
			return Absent
		}
		return string(runes[i])

	case reflect.Struct:
		name, ok := key.(string)
		if !ok {
			return Absent
		}
		f, ok := rv.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return Absent
		}
		field, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return Absent
		}
		return Maybe(field.Interface())
	}
	return Absent
}

// GetIn follows keys through nested values with Get.
func GetIn(v any, keys ...any) any {
	cur := Maybe(v)
	for _, k := range keys {
		if cur == Absent {
			return Absent
		}
		cur = Get(cur, k)
	}
	return cur
}

// position resolves an integer key against a sequence of length n.
func position(key any, n int) (int, bool) {
	kv := reflect.ValueOf(key)
	var i int
	switch kv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i = int(kv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i = int(kv.Uint())
	default:
		return 0, false
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Key returns a stage looking up key in its input with Get.
func Key(key any) Stage {
	return Func(func(v any) any { return Get(v, key) })
}

// Path returns a stage looking up keys in turn with GetIn.
func Path(keys ...any) Stage {
	return Func(func(v any) any { return GetIn(v, keys...) })
}
