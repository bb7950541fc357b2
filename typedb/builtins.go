package typedb

import (
	"github.com/reglacier/gmskit/prp"
)

// RegisterBuiltins installs the trivial primitive types every type
// database builds on. Declaration files reference these by name, so they
// must be registered before any database and before LinkTypes.
func RegisterBuiltins(reg *Registry) error {
	builtins := []*Type{
		NewTrivialType("ZBool", "bool", prp.OpBool),
		NewTrivialType("ZChar", "char", prp.OpChar),
		NewTrivialType("ZInt8", "int8", prp.OpInt8),
		NewTrivialType("ZInt16", "int16", prp.OpInt16),
		NewTrivialType("ZInt32", "int32", prp.OpInt32),
		NewTrivialType("ZFloat32", "float32", prp.OpFloat32),
		NewTrivialType("ZFloat64", "float64", prp.OpFloat64),
		NewTrivialType("ZString", "string", prp.OpString),
	}
	for _, t := range builtins {
		if _, err := reg.RegisterType(t); err != nil {
			return err
		}
	}
	return nil
}
