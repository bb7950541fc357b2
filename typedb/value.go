package typedb

import (
	"fmt"

	"github.com/reglacier/gmskit/pkg/types"
	"github.com/reglacier/gmskit/prp"
)

// Value is one decoded property tree: the verbatim instruction span a
// type mapped, plus named sub-values for complex types. A Value is
// mutable while the loader builds it and frozen before it is stored on a
// scene object; mutation after Freeze fails.
type Value struct {
	typeID TypeID
	ins    []prp.Instruction
	fields []ValueField
	frozen bool
}

// ValueField is one named sub-value of a complex Value, in declaration
// order.
type ValueField struct {
	Name  string
	Value *Value
}

// TypeID returns the id of the type that mapped this value.
func (v *Value) TypeID() TypeID { return v.typeID }

// Instructions returns the verbatim instruction span backing the value,
// including any captured unexposed trailing instructions.
func (v *Value) Instructions() []prp.Instruction { return v.ins }

// Fields returns the named sub-values in declaration order. Nil for
// non-complex values.
func (v *Value) Fields() []ValueField { return v.fields }

// Field returns the sub-value with the given name.
func (v *Value) Field(name string) (*Value, bool) {
	for i := range v.fields {
		if v.fields[i].Name == name {
			return v.fields[i].Value, true
		}
	}
	return nil, false
}

// AppendTrailing appends verbatim instructions to the value's span. Used
// for unexposed trailing instructions captured past a controller's
// declared schema.
func (v *Value) AppendTrailing(ins []prp.Instruction) error {
	if v.frozen {
		return fmt.Errorf("%w: value is frozen", types.ErrSealed)
	}
	v.ins = append(v.ins, ins...)
	return nil
}

// Freeze marks the value immutable. Freezing is idempotent and recursive.
func (v *Value) Freeze() {
	if v == nil || v.frozen {
		return
	}
	v.frozen = true
	for i := range v.fields {
		v.fields[i].Value.Freeze()
	}
}

// Frozen reports whether the value has been frozen.
func (v *Value) Frozen() bool { return v.frozen }

// Equal reports whether two values decode to the same tree: same type,
// same instruction span, same named sub-values.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.typeID != o.typeID || len(v.ins) != len(o.ins) || len(v.fields) != len(o.fields) {
		return false
	}
	for i := range v.ins {
		if v.ins[i] != o.ins[i] {
			return false
		}
	}
	for i := range v.fields {
		if v.fields[i].Name != o.fields[i].Name || !v.fields[i].Value.Equal(o.fields[i].Value) {
			return false
		}
	}
	return true
}
