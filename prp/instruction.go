package prp

import (
	"fmt"
	"strconv"
)

// Operand is the payload union of an instruction. Which field is
// meaningful depends on the opcode: integer/bool/char literals and
// container counts use I64, float literals use F64, string literals and
// named markers use Str. Unused fields stay zero.
type Operand struct {
	I64 int64
	F64 float64
	Str string
}

// Instruction is one opcode plus its operand. Instructions are plain
// values and are never mutated after decoding; streams are shared freely
// between cursors.
type Instruction struct {
	Op      OpCode
	Operand Operand
}

// Count returns the int32 count operand of a Container/NamedContainer.
func (in Instruction) Count() int32 { return int32(in.Operand.I64) }

// String implements the Stringer interface for Instruction.
func (in Instruction) String() string {
	switch {
	case in.Op == OpString || in.Op == OpBeginNamedObject || in.Op == OpNamedContainer:
		if in.Op == OpNamedContainer {
			return fmt.Sprintf("%s(%q, %d)", in.Op, in.Operand.Str, in.Count())
		}
		return fmt.Sprintf("%s(%q)", in.Op, in.Operand.Str)
	case in.Op.IsContainer():
		return fmt.Sprintf("%s(%d)", in.Op, in.Count())
	case in.Op == OpFloat32 || in.Op == OpFloat64:
		return in.Op.String() + "(" + strconv.FormatFloat(in.Operand.F64, 'g', -1, 64) + ")"
	case in.Op.IsTrivial():
		return fmt.Sprintf("%s(%d)", in.Op, in.Operand.I64)
	default:
		return in.Op.String()
	}
}

// Constructors used by tools and tests to build streams in memory.

// BeginObject returns a BeginObject marker.
func BeginObject() Instruction { return Instruction{Op: OpBeginObject} }

// BeginNamedObject returns a BeginNamedObject marker carrying name.
func BeginNamedObject(name string) Instruction {
	return Instruction{Op: OpBeginNamedObject, Operand: Operand{Str: name}}
}

// EndObject returns an EndObject terminator.
func EndObject() Instruction { return Instruction{Op: OpEndObject} }

// Container returns a Container header with count n.
func Container(n int32) Instruction {
	return Instruction{Op: OpContainer, Operand: Operand{I64: int64(n)}}
}

// NamedContainer returns a NamedContainer header with count n.
func NamedContainer(name string, n int32) Instruction {
	return Instruction{Op: OpNamedContainer, Operand: Operand{I64: int64(n), Str: name}}
}

// Str returns a String literal.
func Str(s string) Instruction {
	return Instruction{Op: OpString, Operand: Operand{Str: s}}
}

// Bool returns a Bool literal.
func Bool(v bool) Instruction {
	var i int64
	if v {
		i = 1
	}
	return Instruction{Op: OpBool, Operand: Operand{I64: i}}
}

// Int8 returns an Int8 literal.
func Int8(v int8) Instruction {
	return Instruction{Op: OpInt8, Operand: Operand{I64: int64(v)}}
}

// Int16 returns an Int16 literal.
func Int16(v int16) Instruction {
	return Instruction{Op: OpInt16, Operand: Operand{I64: int64(v)}}
}

// Int32 returns an Int32 literal.
func Int32(v int32) Instruction {
	return Instruction{Op: OpInt32, Operand: Operand{I64: int64(v)}}
}

// Float32 returns a Float32 literal.
func Float32(v float32) Instruction {
	return Instruction{Op: OpFloat32, Operand: Operand{F64: float64(v)}}
}

// Float64 returns a Float64 literal.
func Float64(v float64) Instruction {
	return Instruction{Op: OpFloat64, Operand: Operand{F64: v}}
}
