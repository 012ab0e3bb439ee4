package proptypes

import (
	"reflect"
	"regexp"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
)

// TypeName returns the short type label used in failure messages:
// "array", "object", "string", "number", "boolean", "function", "undefined",
// or "Immutable.<Name>" for collections, where Name is the collection's own
// type name (a record type's name for records).
func TypeName(v any) string {
	if v == nil {
		return "undefined"
	}

	switch t := v.(type) {
	case *regexp.Regexp:
		return "object"
	case immutable.Collection:
		if immutable.IsCollection(v) {
			return "Immutable." + t.TypeName()
		}
		return "object"
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}
