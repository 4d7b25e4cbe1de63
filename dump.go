package logs

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Dump logs the contents of v at Debug level, one line per field or element.
// Structs log their exported fields, maps and slices their elements (slices
// and arrays are capped at 10 elements), and basic types their value.
func (s *Service) Dump(owner string, v any) {
	if s == nil || LevelDebug < s.MinLevel() {
		return
	}
	owner = s.resolveOwner(owner)
	debugf := func(format string, args ...any) {
		s.Log(LevelDebug, owner, format, args...)
	}

	if v == nil {
		debugf("Dump: <nil>")
		return
	}

	visited := make(map[uintptr]bool)
	dumpValue(debugf, v, emptyString, visited, 0)
}

func dumpValue(debugf func(string, ...any), v any, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		debugf("%s: <max depth reached>", prefix)
		return
	}

	if v == nil {
		debugf("%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, detecting cycles.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			debugf("%s: <nil>", prefix)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				debugf("%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			debugf("Struct: %s", typ.Name())
		} else {
			debugf("%s: %s {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			dumpValue(debugf, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			debugf("%s: }", prefix)
		}

	case reflect.Map:
		debugf("%s: map[%s]%s (len: %d) {", prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			mapPrefix := prefix + "[" + fmt.Sprintf("%v", iter.Key().Interface()) + "]"
			dumpValue(debugf, iter.Value().Interface(), mapPrefix, visited, depth+1)
		}

		debugf("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		debugf("%s: %s (len: %d, cap: %d) {", prefix, typ.String(), val.Len(), val.Cap())

		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elem := val.Index(i)
			if !elem.CanInterface() {
				continue
			}
			dumpValue(debugf, elem.Interface(), fmt.Sprintf("%s[%d]", prefix, i), visited, depth+1)
		}

		if val.Len() > maxElements {
			debugf("%s: ... (%d more elements)", prefix, val.Len()-maxElements)
		}

		debugf("%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			debugf("%s: %v", prefix, val.Interface())
		} else {
			debugf("%s: %v", prefix, v)
		}
	}
}
