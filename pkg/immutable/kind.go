package immutable

// Kind identifies one of the supported immutable collection kinds.
type Kind uint8

// Supported kinds. The zero Kind is not a kind.
const (
	KindList Kind = iota + 1
	KindMap
	KindOrderedMap
	KindSet
	KindOrderedSet
	KindStack
	KindSeq
	KindRecord
)

var kindNames = map[Kind]string{
	KindList:       "List",
	KindMap:        "Map",
	KindOrderedMap: "OrderedMap",
	KindSet:        "Set",
	KindOrderedSet: "OrderedSet",
	KindStack:      "Stack",
	KindSeq:        "Seq",
	KindRecord:     "Record",
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the kind's type name, or "Unknown" for the zero Kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Keyed reports whether collections of this kind enumerate key/value pairs
// (map-style) rather than index/value pairs (sequence-style).
func (k Kind) Keyed() bool {
	switch k {
	case KindMap, KindOrderedMap, KindRecord:
		return true
	default:
		return false
	}
}

// Collection is implemented by every immutable collection in this package.
// Range visits entries in the collection's natural iteration order and stops
// as soon as fn returns false. For sequence-style kinds the key is the int
// position of the value.
type Collection interface {
	Kind() Kind
	TypeName() string
	Size() int
	Range(fn func(key, value any) bool)
	Keys() []any
	Values() []any
}

// KindOf returns the kind of v when v is an initialized collection. Zero
// values such as new(List) or &Map{} are not recognized: they were not built
// by a constructor and have no backing storage.
func KindOf(v any) (Kind, bool) {
	switch c := v.(type) {
	case *List:
		return KindList, c != nil && c.items != nil
	case *Map:
		if c == nil || c.data == nil || !c.kind.valid() {
			return 0, false
		}
		return c.kind, true
	case *Set:
		if c == nil || c.items == nil || !c.kind.valid() {
			return 0, false
		}
		return c.kind, true
	case *Stack:
		return KindStack, c != nil && c.items != nil
	case *Seq:
		return KindSeq, c != nil && c.src != nil
	case *Record:
		return KindRecord, c != nil && c.typ != nil && c.data != nil
	default:
		return 0, false
	}
}

// AsCollection returns v as a Collection when it is a recognized, non-nil collection.
func AsCollection(v any) (Collection, bool) {
	if _, ok := KindOf(v); !ok {
		return nil, false
	}
	c, ok := v.(Collection)
	return c, ok
}

// IsCollection reports whether v is an initialized collection of any kind.
func IsCollection(v any) bool {
	_, ok := KindOf(v)
	return ok
}

// IsKind reports whether v is an initialized collection of exactly kind.
func IsKind(v any, kind Kind) bool {
	k, ok := KindOf(v)
	return ok && k == kind
}

// Kind predicates. Each matches exactly one kind: IsMap rejects an OrderedMap.
func IsList(v any) bool       { return IsKind(v, KindList) }
func IsMap(v any) bool        { return IsKind(v, KindMap) }
func IsOrderedMap(v any) bool { return IsKind(v, KindOrderedMap) }
func IsSet(v any) bool        { return IsKind(v, KindSet) }
func IsOrderedSet(v any) bool { return IsKind(v, KindOrderedSet) }
func IsStack(v any) bool      { return IsKind(v, KindStack) }
func IsSeq(v any) bool        { return IsKind(v, KindSeq) }
func IsRecord(v any) bool     { return IsKind(v, KindRecord) }
