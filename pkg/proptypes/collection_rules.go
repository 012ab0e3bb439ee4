package proptypes

import (
	"strconv"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
)

// ListOf checks that the prop is a List and that every value passes elem.
// An optional keys validator is applied to the list's indexes.
func ListOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(immutable.KindList.String(), immutable.IsList, elem, keys)
}

// MapOf checks that the prop is a Map whose values pass elem and, when
// given, whose keys pass keys[0].
func MapOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(immutable.KindMap.String(), immutable.IsMap, elem, keys)
}

// OrderedMapOf is MapOf for the OrderedMap kind.
func OrderedMapOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(immutable.KindOrderedMap.String(), immutable.IsOrderedMap, elem, keys)
}

// SetOf checks that the prop is a Set and that every member passes elem.
func SetOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(immutable.KindSet.String(), immutable.IsSet, elem, keys)
}

// OrderedSetOf is SetOf for the OrderedSet kind.
func OrderedSetOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(immutable.KindOrderedSet.String(), immutable.IsOrderedSet, elem, keys)
}

// StackOf checks that the prop is a Stack whose values, top first, pass elem.
func StackOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(immutable.KindStack.String(), immutable.IsStack, elem, keys)
}

// IterableOf is the kind-agnostic form of ListOf and MapOf.
func IterableOf(elem Validator, keys ...Validator) Checker {
	return elementChecker(iterableLabel, immutable.IsCollection, elem, keys)
}

// elementChecker checks the collection's values, then its keys, each as a
// positional sequence in iteration order: the failing entry is named by its
// position ("0", "1", ...) rather than by its key. The first failure is
// returned as produced by the nested validator.
func elementChecker(label string, is func(any) bool, elem Validator, keys []Validator) Checker {
	return Chain(func(props Props, propName, componentName, location string) error {
		value := propValue(props, propName)
		if !is(value) {
			return wrongCollection(propName, componentName, location, TypeName(value), label)
		}
		if isNilValidator(elem) || len(keys) > 1 {
			return badConfiguration(propName, componentName)
		}

		depth := depthOf(props) + 1
		if depth > MaxDepth {
			return tooDeep(propName, componentName, location)
		}

		c, _ := immutable.AsCollection(value)
		if err := checkEach(c.Values(), elem, depth, componentName, location); err != nil {
			return err
		}
		if len(keys) == 1 && !isNilValidator(keys[0]) {
			return checkEach(c.Keys(), keys[0], depth, componentName, location)
		}
		return nil
	})
}

func checkEach(values []any, v Validator, depth int, componentName, location string) error {
	container := positional(values, depth)
	for i := range values {
		if err := v.Validate(container, strconv.Itoa(i), componentName, location); err != nil {
			return err
		}
	}
	return nil
}
