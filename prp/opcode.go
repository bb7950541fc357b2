package prp

// OpCode tags one instruction's kind. The numeric values double as the
// wire tags consumed by Decode.
type OpCode uint8

const (
	OpInvalid OpCode = 0x00

	// Trivial literals.
	OpBool    OpCode = 0x01
	OpChar    OpCode = 0x02
	OpInt8    OpCode = 0x03
	OpInt16   OpCode = 0x04
	OpInt32   OpCode = 0x05
	OpFloat32 OpCode = 0x06
	OpFloat64 OpCode = 0x07
	OpString  OpCode = 0x08

	// Structural markers.
	OpBeginObject      OpCode = 0x0A
	OpBeginNamedObject OpCode = 0x0B
	OpEndObject        OpCode = 0x0C
	OpContainer        OpCode = 0x0D
	OpNamedContainer   OpCode = 0x0E
)

// String implements the Stringer interface for OpCode.
func (op OpCode) String() string {
	switch op {
	case OpBool:
		return "Bool"
	case OpChar:
		return "Char"
	case OpInt8:
		return "Int8"
	case OpInt16:
		return "Int16"
	case OpInt32:
		return "Int32"
	case OpFloat32:
		return "Float32"
	case OpFloat64:
		return "Float64"
	case OpString:
		return "String"
	case OpBeginObject:
		return "BeginObject"
	case OpBeginNamedObject:
		return "BeginNamedObject"
	case OpEndObject:
		return "EndObject"
	case OpContainer:
		return "Container"
	case OpNamedContainer:
		return "NamedContainer"
	case OpInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// IsBegin reports whether op opens an object definition.
func (op OpCode) IsBegin() bool {
	return op == OpBeginObject || op == OpBeginNamedObject
}

// IsContainer reports whether op carries a count operand that introduces
// a controller or children section.
func (op OpCode) IsContainer() bool {
	return op == OpContainer || op == OpNamedContainer
}

// IsTrivial reports whether op is a literal payload opcode.
func (op OpCode) IsTrivial() bool {
	return op >= OpBool && op <= OpString
}
