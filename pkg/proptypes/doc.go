// Package proptypes validates props holding immutable collections.
//
// Every catalog entry is a Checker. A Checker is optional by default: a prop
// that is missing or nil passes. IsRequired returns the variant that fails
// with a MissingRequired failure instead.
//
// # Catalog
//
// Kind checkers accept exactly one collection kind:
//
//	proptypes.List, Map, OrderedMap, Set, OrderedSet, Stack, Seq, Record
//
// Kinds are strict, so Map rejects an OrderedMap. Iterable accepts any
// collection.
//
// Element checkers also validate every value, and optionally every key:
//
//	proptypes.ListOf(proptypes.Number)
//	proptypes.MapOf(proptypes.Number, proptypes.String) // values, then keys
//	proptypes.OrderedMapOf, SetOf, OrderedSetOf, StackOf, IterableOf
//
// Elements are named by their position in iteration order, so the third
// value of a map fails as prop "2" whatever its key.
//
// Structural checkers validate named fields and ignore the rest:
//
//	proptypes.Shape(proptypes.Fields{
//		proptypes.F("id", proptypes.Number.IsRequired()),
//		proptypes.F("tags", proptypes.SetOf(proptypes.String)),
//	})
//
// Contains is an alias of Shape; MapContains and RecordOf restrict the kind;
// RecordOfType accepts only records built from one *immutable.RecordType.
//
// String, Number, Bool, Func, Array, Object, Any, InstanceOf and OneOf cover
// plain values so that element and shape checkers can be composed from them.
//
// # Failures
//
// Validators return a *Failure whose Message is the exact human-readable text,
// for example:
//
//	Invalid prop `2` of type `string` supplied to `List`, expected `number`.
//
// Failures match the package sentinels with errors.Is:
//
//	if errors.Is(err, proptypes.ErrMissingRequired) { ... }
//
// Nested failures are returned unchanged by the enclosing checker.
// Collections nested deeper than MaxDepth fail with ErrTooDeep.
//
// # Checking components
//
// CheckPropTypes runs a list of specs against props and aggregates the
// failures into ValidationErrors. A Reporter does the same and logs each
// distinct message once through log/slog:
//
//	cfg, err := proptypes.LoadConfig()
//	if err != nil {
//		return err
//	}
//	reporter := proptypes.NewReporter(cfg, proptypes.WithLogger(log))
//	_ = reporter.Check(ctx, specs, proptypes.Values{"items": items}, "prop", "TodoList")
//
// Reporting is off when the configured or context environment is production.
package proptypes
