package proptypes

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
)

// Field binds a validator to a named field. A nil Validator places no
// constraint on the field.
type Field struct {
	Name      string
	Validator Validator
}

// Fields is an ordered validator map. Structural checkers report the first
// failing field in this order.
type Fields []Field

// F is shorthand for a Field literal.
func F(name string, v Validator) Field {
	return Field{Name: name, Validator: v}
}

// FieldsOf builds Fields from a map, ordered by field name.
func FieldsOf(m map[string]Validator) Fields {
	fields := make(Fields, 0, len(m))
	for name, v := range m {
		fields = append(fields, Field{Name: name, Validator: v})
	}
	slices.SortFunc(fields, func(a, b Field) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return fields
}

// Shape checks named fields of any collection. Fields present in the value
// but not listed are never checked.
func Shape(fields Fields) Checker {
	return shapeChecker(iterableLabel, immutable.IsCollection, fields)
}

// Contains is an alias of Shape.
func Contains(fields Fields) Checker {
	return Shape(fields)
}

// MapContains is Shape restricted to the Map kind.
func MapContains(fields Fields) Checker {
	return shapeChecker(immutable.KindMap.String(), immutable.IsMap, fields)
}

// RecordOf is Shape restricted to records.
func RecordOf(fields Fields) Checker {
	return shapeChecker(immutable.KindRecord.String(), immutable.IsRecord, fields)
}

// RecordOfType accepts only records built from exactly t.
func RecordOfType(t *immutable.RecordType) Checker {
	return Chain(func(props Props, propName, componentName, location string) error {
		value := propValue(props, propName)
		rec, ok := value.(*immutable.Record)
		if !ok || !immutable.IsRecord(rec) {
			return wrongCollection(propName, componentName, location, TypeName(value), immutable.KindRecord.String())
		}
		if t == nil {
			return badConfiguration(propName, componentName)
		}
		if !rec.Is(t) {
			return recordMismatch(propName, componentName, location)
		}
		return nil
	})
}

func shapeChecker(label string, is func(any) bool, fields Fields) Checker {
	fields = slices.Clone(fields)

	return Chain(func(props Props, propName, componentName, location string) error {
		value := propValue(props, propName)
		if !is(value) {
			return wrongCollection(propName, componentName, location, TypeName(value), label)
		}

		depth := depthOf(props) + 1
		if depth > MaxDepth {
			return tooDeep(propName, componentName, location)
		}

		c, _ := immutable.AsCollection(value)
		container := keyed(c, depth)
		for _, f := range fields {
			if isNilValidator(f.Validator) {
				continue
			}
			if err := f.Validator.Validate(container, f.Name, componentName, location); err != nil {
				return err
			}
		}
		return nil
	})
}

// keyed materializes a collection by its own keys: printed keys for map-like
// kinds, positions for sequence-like kinds.
func keyed(c immutable.Collection, depth int) entries {
	m := make(map[string]any, c.Size())
	c.Range(func(k, v any) bool {
		if c.Kind().Keyed() {
			m[keyString(k)] = v
		} else {
			m[strconv.Itoa(k.(int))] = v
		}
		return true
	})
	return entries{values: m, depth: depth}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
