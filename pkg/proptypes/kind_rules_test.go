package proptypes_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
	"github.com/dmitrymomot/immutableprops/pkg/proptypes"
)

func sampleCollections() map[string]any {
	person := immutable.DefineRecord("Person", immutable.RecordField{Name: "name"})
	return map[string]any{
		"List":       immutable.NewList(1, 2),
		"Map":        immutable.MapOf("a", 1),
		"OrderedMap": immutable.OrderedMapOf("a", 1),
		"Set":        immutable.NewSet(1),
		"OrderedSet": immutable.NewOrderedSet(1),
		"Stack":      immutable.NewStack(1),
		"Seq":        immutable.NewSeq(1),
		"Record":     person.New(map[string]any{"name": "Ann"}),
	}
}

func TestKindCheckers_Strict(t *testing.T) {
	checkers := map[string]proptypes.Checker{
		"List":       proptypes.List,
		"Map":        proptypes.Map,
		"OrderedMap": proptypes.OrderedMap,
		"Set":        proptypes.Set,
		"OrderedSet": proptypes.OrderedSet,
		"Stack":      proptypes.Stack,
		"Seq":        proptypes.Seq,
		"Record":     proptypes.Record,
	}
	values := sampleCollections()

	for checkerKind, checker := range checkers {
		for valueKind, value := range values {
			err := check(checker, value)
			if checkerKind == valueKind {
				assert.NoError(t, err, "%s checker should accept %s", checkerKind, valueKind)
				continue
			}
			assert.ErrorIs(t, err, proptypes.ErrWrongKind, "%s checker should reject %s", checkerKind, valueKind)
		}
	}
}

func TestKindCheckers_OrderedVariants(t *testing.T) {
	t.Run("map rejects ordered map", func(t *testing.T) {
		err := check(proptypes.Map, immutable.OrderedMapOf("a", 1))
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `Immutable.OrderedMap` supplied to `testComponent`, expected `Map`.", err.Error())
	})

	t.Run("ordered map rejects map", func(t *testing.T) {
		err := check(proptypes.OrderedMap, immutable.MapOf("a", 1))
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `Immutable.Map` supplied to `testComponent`, expected `OrderedMap`.", err.Error())
	})

	t.Run("set rejects ordered set", func(t *testing.T) {
		assert.Error(t, check(proptypes.Set, immutable.NewOrderedSet(1)))
	})

	t.Run("ordered set rejects set", func(t *testing.T) {
		assert.Error(t, check(proptypes.OrderedSet, immutable.NewSet(1)))
	})
}

func TestIterable(t *testing.T) {
	t.Run("accepts every collection kind", func(t *testing.T) {
		for kind, value := range sampleCollections() {
			assert.NoError(t, check(proptypes.Iterable, value), kind)
		}
	})

	t.Run("rejects plain values", func(t *testing.T) {
		err := check(proptypes.Iterable, map[string]any{"a": 1})
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `object` supplied to `testComponent`, expected `Iterable`.", err.Error())
	})
}

func TestKindCheckers_PlainValues(t *testing.T) {
	t.Run("list rejects native slice", func(t *testing.T) {
		err := check(proptypes.List, []any{})
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `array` supplied to `testComponent`, expected `List`.", err.Error())
	})

	t.Run("map rejects string", func(t *testing.T) {
		err := check(proptypes.Map, "x")
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `string` supplied to `testComponent`, expected `Map`.", err.Error())
	})

	t.Run("record rejects regexp as object", func(t *testing.T) {
		err := check(proptypes.Record, regexp.MustCompile("a+"))
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `object` supplied to `testComponent`, expected `Record`.", err.Error())
	})

	t.Run("stack rejects number", func(t *testing.T) {
		err := check(proptypes.Stack, 42)
		require.Error(t, err)
		assert.Equal(t, "Invalid prop `testProp` of type `number` supplied to `testComponent`, expected `Stack`.", err.Error())
	})
}

func TestCheckers_ZeroValueCollections(t *testing.T) {
	zeros := map[string]any{
		"List":   new(immutable.List),
		"Map":    &immutable.Map{},
		"Set":    new(immutable.Set),
		"Stack":  new(immutable.Stack),
		"Seq":    new(immutable.Seq),
		"Record": new(immutable.Record),
	}

	checkers := map[string]proptypes.Checker{
		"Iterable":   proptypes.Iterable,
		"Map":        proptypes.Map,
		"ListOf":     proptypes.ListOf(proptypes.Number),
		"IterableOf": proptypes.IterableOf(proptypes.Number),
		"Shape":      proptypes.Shape(proptypes.Fields{proptypes.F("0", proptypes.Number)}),
		"RecordOf":   proptypes.RecordOf(proptypes.Fields{proptypes.F("name", proptypes.String)}),
	}

	for zeroName, zero := range zeros {
		t.Run(zeroName+" is not a collection", func(t *testing.T) {
			assert.Equal(t, "object", proptypes.TypeName(zero))

			for checkerName, c := range checkers {
				var err error
				require.NotPanics(t, func() { err = check(c, zero) }, checkerName)
				require.Error(t, err, checkerName)
				assert.ErrorIs(t, err, proptypes.ErrWrongKind, checkerName)
				assert.Contains(t, err.Error(), "of type `object`", checkerName)
			}
		})
	}
}
