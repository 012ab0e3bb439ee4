package proptypes

import (
	"reflect"
	"strconv"
)

// Anonymous replaces an empty component name in failure messages.
const Anonymous = "<<anonymous>>"

// MaxDepth is the deepest collection nesting a validator descends into.
const MaxDepth = 64

// Props is the container a validator reads the checked value from.
type Props interface {
	Get(name string) (any, bool)
}

// Values is the plain props container used by callers.
type Values map[string]any

// Get returns the value stored under name.
func (v Values) Get(name string) (any, bool) {
	value, ok := v[name]
	return value, ok
}

// Validator checks props[propName]. A nil error means the value is valid.
type Validator interface {
	Validate(props Props, propName, componentName, location string) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(props Props, propName, componentName, location string) error

// Validate calls f.
func (f ValidatorFunc) Validate(props Props, propName, componentName, location string) error {
	return f(props, propName, componentName, location)
}

// Checker is the chainable form every catalog entry is built as. The zero
// value and values returned by Chain are optional: an absent prop passes.
// IsRequired returns the variant that fails on absence.
//
// A prop is absent when the key is missing or holds nil, including a nil
// pointer, map, slice, func or channel.
type Checker struct {
	validate ValidatorFunc
	required bool
}

// Chain wraps validate, which only ever sees present values and a non-empty
// component name.
func Chain(validate ValidatorFunc) Checker {
	return Checker{validate: validate}
}

// IsRequired returns a copy of c that fails when the prop is absent.
func (c Checker) IsRequired() Checker {
	c.required = true
	return c
}

// Required reports whether c fails on an absent prop.
func (c Checker) Required() bool {
	return c.required
}

// Validate applies the absence rule, then the wrapped check.
func (c Checker) Validate(props Props, propName, componentName, location string) error {
	if componentName == "" {
		componentName = Anonymous
	}

	var value any
	if props != nil {
		value, _ = props.Get(propName)
	}
	if isAbsent(value) {
		if c.required {
			return missingRequired(propName, componentName, location)
		}
		return nil
	}

	if c.validate == nil {
		return nil
	}
	return c.validate(props, propName, componentName, location)
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// isNilValidator reports a validator that cannot be called.
func isNilValidator(v Validator) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(ValidatorFunc); ok {
		return f == nil
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// entries is a materialized collection handed to nested validators. It
// records how deep in the prop it sits so recursion stays bounded.
type entries struct {
	values map[string]any
	depth  int
}

func (e entries) Get(name string) (any, bool) {
	v, ok := e.values[name]
	return v, ok
}

func depthOf(props Props) int {
	if e, ok := props.(entries); ok {
		return e.depth
	}
	return 0
}

func positional(values []any, depth int) entries {
	m := make(map[string]any, len(values))
	for i, v := range values {
		m[strconv.Itoa(i)] = v
	}
	return entries{values: m, depth: depth}
}

// propValue reads the value a validate func is checking. Chain guarantees
// props is non-nil by the time it runs.
func propValue(props Props, propName string) any {
	v, _ := props.Get(propName)
	return v
}
