package proptypes

import "github.com/dmitrymomot/immutableprops/pkg/immutable"

// Checkers for a single collection kind. Kinds are strict: Map rejects an
// OrderedMap and Set rejects an OrderedSet. Iterable accepts every kind.
var (
	List       = kindChecker(immutable.KindList.String(), immutable.IsList)
	Map        = kindChecker(immutable.KindMap.String(), immutable.IsMap)
	OrderedMap = kindChecker(immutable.KindOrderedMap.String(), immutable.IsOrderedMap)
	Set        = kindChecker(immutable.KindSet.String(), immutable.IsSet)
	OrderedSet = kindChecker(immutable.KindOrderedSet.String(), immutable.IsOrderedSet)
	Stack      = kindChecker(immutable.KindStack.String(), immutable.IsStack)
	Seq        = kindChecker(immutable.KindSeq.String(), immutable.IsSeq)
	Record     = kindChecker(immutable.KindRecord.String(), immutable.IsRecord)
	Iterable   = kindChecker(iterableLabel, immutable.IsCollection)
)

const iterableLabel = "Iterable"

func kindChecker(label string, is func(any) bool) Checker {
	return Chain(func(props Props, propName, componentName, location string) error {
		value := propValue(props, propName)
		if !is(value) {
			return wrongType(propName, componentName, location, TypeName(value), label)
		}
		return nil
	})
}
