package prp

import (
	"fmt"

	"github.com/reglacier/gmskit/internal/buf"
	"github.com/reglacier/gmskit/pkg/types"
)

// Wire layout, little-endian throughout:
//
//	tag:u8, then per opcode:
//	  Bool/Char/Int8            payload:u8
//	  Int16                     payload:u16
//	  Int32                     payload:u32
//	  Float32                   payload:f32
//	  Float64                   payload:f64
//	  String/BeginNamedObject   len:u32, bytes[len]
//	  Container                 count:u32
//	  NamedContainer            len:u32, bytes[len], count:u32
//	  BeginObject/EndObject     no payload

// maxStringLen caps a single string operand; real assets stay far below
// this, so anything larger is corruption rather than data.
const maxStringLen = 1 << 20

// Decode parses a raw PRP byte stream into instructions. Decoding stops at
// the end of data; a record cut short fails with an error wrapping
// types.ErrTruncated and carrying the instruction index.
func Decode(data []byte) ([]Instruction, error) {
	r := buf.NewReader(data)
	var out []Instruction

	for r.Remaining() > 0 {
		idx := len(out)
		tag, err := r.U8()
		if err != nil {
			return nil, fmt.Errorf("prp: instruction %d: %w", idx, err)
		}

		in := Instruction{Op: OpCode(tag)}
		switch in.Op {
		case OpBeginObject, OpEndObject:
			// no payload

		case OpBool, OpChar, OpInt8:
			v, err := r.U8()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			if in.Op == OpInt8 || in.Op == OpChar {
				in.Operand.I64 = int64(int8(v))
			} else {
				in.Operand.I64 = int64(v)
			}

		case OpInt16:
			v, err := r.U16()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			in.Operand.I64 = int64(int16(v))

		case OpInt32, OpContainer:
			v, err := r.I32()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			in.Operand.I64 = int64(v)

		case OpFloat32:
			v, err := r.F32()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			in.Operand.F64 = float64(v)

		case OpFloat64:
			v, err := r.F64()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			in.Operand.F64 = v

		case OpString, OpBeginNamedObject:
			s, err := decodeString(r)
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			in.Operand.Str = s

		case OpNamedContainer:
			s, err := decodeString(r)
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			count, err := r.I32()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d (%s): %w", idx, in.Op, err)
			}
			in.Operand.Str = s
			in.Operand.I64 = int64(count)

		default:
			return nil, fmt.Errorf("prp: instruction %d: unknown opcode tag 0x%02X", idx, tag)
		}

		out = append(out, in)
	}
	return out, nil
}

func decodeString(r *buf.Reader) (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	if n > maxStringLen {
		return "", fmt.Errorf("%w: string length %d exceeds limit", types.ErrTruncated, n)
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
