package immutable

import "github.com/emirpasic/gods/maps/linkedhashmap"

// RecordField declares one record field and its default value.
type RecordField struct {
	Name    string
	Default any
}

// RecordType is a record definition. Records built from the same *RecordType
// share its identity; two definitions with identical fields are still
// different types.
type RecordType struct {
	name   string
	fields []RecordField
}

// DefineRecord declares a record type. An empty name makes the type anonymous.
// Duplicate field names keep the first declaration.
func DefineRecord(name string, fields ...RecordField) *RecordType {
	seen := make(map[string]bool, len(fields))
	own := make([]RecordField, 0, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		own = append(own, f)
	}
	return &RecordType{name: name, fields: own}
}

// Name returns the declared name, or "Record" for anonymous types.
func (t *RecordType) Name() string {
	if t.name == "" {
		return KindRecord.String()
	}
	return t.name
}

func (t *RecordType) Fields() []RecordField {
	out := make([]RecordField, len(t.fields))
	copy(out, t.fields)
	return out
}

func (t *RecordType) Has(field string) bool {
	for _, f := range t.fields {
		if f.Name == field {
			return true
		}
	}
	return false
}

// New creates a record of this type. Fields missing from values take their
// defaults; keys the type does not declare are ignored.
func (t *RecordType) New(values map[string]any) *Record {
	data := linkedhashmap.New()
	for _, f := range t.fields {
		v, ok := values[f.Name]
		if !ok {
			v = f.Default
		}
		data.Put(f.Name, v)
	}
	return &Record{typ: t, data: data}
}

// Record is an instance of a RecordType.
type Record struct {
	typ  *RecordType
	data *linkedhashmap.Map
}

func (r *Record) Kind() Kind        { return KindRecord }
func (r *Record) TypeName() string  { return r.typ.Name() }
func (r *Record) Type() *RecordType { return r.typ }
func (r *Record) Size() int         { return r.data.Size() }

// Is reports whether r was built from exactly t.
func (r *Record) Is(t *RecordType) bool { return r.typ == t }

func (r *Record) Get(field string) (any, bool) {
	if !r.typ.Has(field) {
		return nil, false
	}
	v, _ := r.data.Get(field)
	return v, true
}

// Set returns a new record with field replaced. Undeclared fields are ignored
// and r is returned unchanged.
func (r *Record) Set(field string, value any) *Record {
	if !r.typ.Has(field) {
		return r
	}
	values := r.ToMap()
	values[field] = value
	return r.typ.New(values)
}

// ToMap returns a plain copy of the record's fields.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, r.data.Size())
	r.Range(func(k, v any) bool {
		out[k.(string)] = v
		return true
	})
	return out
}

func (r *Record) Range(fn func(key, value any) bool) {
	it := r.data.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

func (r *Record) Keys() []any   { return r.data.Keys() }
func (r *Record) Values() []any { return r.data.Values() }
