// Package immutable provides the small set of immutable collections that the
// proptypes validators inspect: List, Map, OrderedMap, Set, OrderedSet, Stack,
// Seq and Record.
//
// Every collection is immutable after construction. Constructors copy their
// input and every operation that would modify a collection returns a new one
// instead. Storage is delegated to github.com/emirpasic/gods containers, which
// are never exposed.
//
// # Kinds
//
// The set of kinds is closed. KindOf recognizes a value and reports its Kind,
// and each Kind knows whether it enumerates map-style (key to value) or
// sequence-style (index to value):
//
//	k, ok := immutable.KindOf(v)
//	if ok && k.Keyed() {
//	    // Map, OrderedMap or Record
//	}
//
// Map and Set enumerate in insertion order, like their ordered counterparts,
// so iteration is always consistent. Only the ordered kinds promise it.
//
// # Records
//
// A RecordType is a named set of fields with defaults. Records remember the
// exact *RecordType that built them, which makes "is this the same record type"
// an identity check:
//
//	Person := immutable.DefineRecord("Person",
//	    immutable.RecordField{Name: "name", Default: ""},
//	    immutable.RecordField{Name: "age", Default: 0},
//	)
//	p := Person.New(map[string]any{"name": "Ada"})
//	p.Is(Person) // true
//
// # Conversion
//
// FromNative turns plain Go slices and maps into collections. FromYAML does
// the same for YAML and JSON documents and keeps the document's key order.
package immutable
