package typedb

import (
	"github.com/reglacier/gmskit/prp"
)

// TypeID is a stable index into a Registry's type arena. Components hold
// TypeIDs rather than *Type; ids stay valid until Reset.
type TypeID uint32

// InvalidTypeID is the zero-lookup result; never a valid arena index.
const InvalidTypeID TypeID = 0xFFFFFFFF

// Kind discriminates the schema variants of a Type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTrivial      // a single literal instruction
	KindArray        // a fixed-length run of one element type
	KindComplex      // named fields, optional parent, may be a controller
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindTrivial:
		return "trivial"
	case KindArray:
		return "array"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Field is one named property slot of a complex type.
type Field struct {
	Name     string `yaml:"name"`
	TypeName string `yaml:"type"`

	typeID TypeID // resolved by LinkTypes
}

// Type is one schema node: a tagged variant over {trivial, array,
// complex}. Types are owned by the Registry that registered them and are
// immutable once the registry is linked.
type Type struct {
	reg       *Registry
	id        TypeID
	name      string
	shortName string
	kind      Kind
	hashes    []uint32

	// trivial
	op prp.OpCode

	// array
	elemName string
	elemID   TypeID
	length   int

	// complex
	parentName     string
	parentID       TypeID
	fields         []Field // own fields only
	flat           []Field // inherited + own, built by LinkTypes
	allowUnexposed bool
}

// NewTrivialType returns an unregistered trivial type expecting exactly
// one literal of the given opcode.
func NewTrivialType(name, shortName string, op prp.OpCode) *Type {
	return &Type{
		name:      name,
		shortName: shortName,
		kind:      KindTrivial,
		op:        op,
		elemID:    InvalidTypeID,
		parentID:  InvalidTypeID,
	}
}

// NewArrayType returns an unregistered fixed-length array type. The
// element type is resolved by name during LinkTypes.
func NewArrayType(name, shortName, element string, length int) *Type {
	return &Type{
		name:      name,
		shortName: shortName,
		kind:      KindArray,
		elemName:  element,
		length:    length,
		elemID:    InvalidTypeID,
		parentID:  InvalidTypeID,
	}
}

// NewComplexType returns an unregistered complex type. Parent (optional)
// and field types are resolved by name during LinkTypes.
func NewComplexType(name, shortName, parent string, fields []Field, allowUnexposed bool) *Type {
	return &Type{
		name:           name,
		shortName:      shortName,
		kind:           KindComplex,
		parentName:     parent,
		fields:         fields,
		allowUnexposed: allowUnexposed,
		elemID:         InvalidTypeID,
		parentID:       InvalidTypeID,
	}
}

// ID returns the type's arena id (InvalidTypeID before registration).
func (t *Type) ID() TypeID { return t.id }

// Name returns the unique registered name.
func (t *Type) Name() string { return t.name }

// ShortName returns the unqualified lookup key used by controller
// resolution. Empty when the type has none.
func (t *Type) ShortName() string { return t.shortName }

// Kind returns the schema variant.
func (t *Type) Kind() Kind { return t.kind }

// Hashes returns every hash bound to this type, historical aliases
// included.
func (t *Type) Hashes() []uint32 { return t.hashes }

// AllowsUnexposedInstructions reports whether trailing instructions past
// the declared schema are captured verbatim instead of rejected. Only
// meaningful for complex types.
func (t *Type) AllowsUnexposedInstructions() bool {
	return t.kind == KindComplex && t.allowUnexposed
}

// Fields returns the type's flattened field schema (inherited fields
// first). Only populated for complex types after LinkTypes.
func (t *Type) Fields() []Field { return t.flat }

// Verify checks, without consuming, that the upcoming instructions match
// the type's schema shape. On success the returned cursor equals cur; on
// failure it points at the mismatching instruction, for diagnostics only.
func (t *Type) Verify(cur prp.Cursor) (bool, prp.Cursor) {
	_, rest, ok := t.walk(cur, false)
	if !ok {
		return false, rest
	}
	return true, cur
}

// Map consumes instructions matching the type's schema and produces a
// Value. A structural mismatch returns a nil Value and the cursor
// position of the mismatch.
func (t *Type) Map(cur prp.Cursor) (*Value, prp.Cursor) {
	v, rest, ok := t.walk(cur, true)
	if !ok {
		return nil, rest
	}
	return v, rest
}

// walk is the single dispatch over the variant behind Verify and Map.
// It consumes from cur and returns the remainder; build controls whether
// a Value is materialized.
func (t *Type) walk(cur prp.Cursor, build bool) (*Value, prp.Cursor, bool) {
	switch t.kind {
	case KindTrivial:
		head, ok := cur.Head()
		if !ok || head.Op != t.op {
			return nil, cur, false
		}
		rest, _ := cur.Advance(1)
		if !build {
			return nil, rest, true
		}
		span, _ := cur.Slice(0, 1)
		return &Value{typeID: t.id, ins: span.Instructions()}, rest, true

	case KindArray:
		elem := t.reg.ResolveID(t.elemID)
		if elem == nil {
			return nil, cur, false
		}
		rest := cur
		for i := 0; i < t.length; i++ {
			var ok bool
			if _, rest, ok = elem.walk(rest, false); !ok {
				return nil, rest, false
			}
		}
		if !build {
			return nil, rest, true
		}
		span, _ := cur.Slice(0, cur.Len()-rest.Len())
		return &Value{typeID: t.id, ins: span.Instructions()}, rest, true

	case KindComplex:
		rest := cur
		var fields []ValueField
		for i := range t.flat {
			ft := t.reg.ResolveID(t.flat[i].typeID)
			if ft == nil {
				return nil, rest, false
			}
			sub, next, ok := ft.walk(rest, build)
			if !ok {
				return nil, next, false
			}
			if build {
				fields = append(fields, ValueField{Name: t.flat[i].Name, Value: sub})
			}
			rest = next
		}
		if !build {
			return nil, rest, true
		}
		span, _ := cur.Slice(0, cur.Len()-rest.Len())
		return &Value{typeID: t.id, ins: span.Instructions(), fields: fields}, rest, true

	default:
		return nil, cur, false
	}
}
