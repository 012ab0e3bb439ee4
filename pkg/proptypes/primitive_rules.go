package proptypes

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Checkers for plain values, named after the labels TypeName produces.
var (
	String = primitiveChecker("string")
	Number = primitiveChecker("number")
	Bool   = primitiveChecker("boolean")
	Func   = primitiveChecker("function")
	Array  = primitiveChecker("array")
	Object = primitiveChecker("object")
	Any    = Chain(func(Props, string, string, string) error { return nil })
)

func primitiveChecker(expected string) Checker {
	return Chain(func(props Props, propName, componentName, location string) error {
		value := propValue(props, propName)
		if actual := TypeName(value); actual != expected {
			return wrongType(propName, componentName, location, actual, expected)
		}
		return nil
	})
}

// InstanceOf accepts values whose dynamic type is exactly the type of sample.
// When sample is a nil pointer to an interface, such as (*fmt.Stringer)(nil),
// values implementing that interface are accepted instead.
func InstanceOf(sample any) Checker {
	expected := reflect.TypeOf(sample)
	if expected != nil && expected.Kind() == reflect.Pointer && expected.Elem().Kind() == reflect.Interface {
		expected = expected.Elem()
	}

	return Chain(func(props Props, propName, componentName, location string) error {
		if expected == nil {
			return badConfiguration(propName, componentName)
		}
		value := propValue(props, propName)
		actual := reflect.TypeOf(value)
		if actual == expected || (expected.Kind() == reflect.Interface && actual.Implements(expected)) {
			return nil
		}
		return wrongInstance(propName, componentName, location, actual.String(), expected.String())
	})
}

// OneOf accepts values deeply equal to one of values.
func OneOf(values ...any) Checker {
	expected := describeValues(values)

	return Chain(func(props Props, propName, componentName, location string) error {
		value := propValue(props, propName)
		for _, v := range values {
			if reflect.DeepEqual(v, value) {
				return nil
			}
		}
		return wrongValue(propName, componentName, location, value, expected)
	})
}

func describeValues(values []any) string {
	if values == nil {
		values = []any{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return fmt.Sprint(values)
	}
	return string(b)
}
