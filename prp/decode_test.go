package prp

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reglacier/gmskit/pkg/types"
)

// stream builds a raw byte stream for Decode, mirroring the wire layout
// documented in decode.go.
type stream struct {
	b []byte
}

func (s *stream) tag(op OpCode) *stream {
	s.b = append(s.b, byte(op))
	return s
}

func (s *stream) u8(v uint8) *stream {
	s.b = append(s.b, v)
	return s
}

func (s *stream) u32(v uint32) *stream {
	s.b = binary.LittleEndian.AppendUint32(s.b, v)
	return s
}

func (s *stream) str(v string) *stream {
	s.u32(uint32(len(v)))
	s.b = append(s.b, v...)
	return s
}

func TestDecodeObjectStream(t *testing.T) {
	var s stream
	s.tag(OpBeginObject).
		tag(OpBool).u8(1).
		tag(OpInt32).u32(0xFFFFFFFF). // -1
		tag(OpFloat32).u32(math.Float32bits(1.5)).
		tag(OpString).str("Hero").
		tag(OpEndObject).
		tag(OpContainer).u32(0).
		tag(OpNamedContainer).str("Kids").u32(2)

	ins, err := Decode(s.b)
	require.NoError(t, err)
	require.Equal(t, []Instruction{
		BeginObject(),
		Bool(true),
		Int32(-1),
		Float32(1.5),
		Str("Hero"),
		EndObject(),
		Container(0),
		NamedContainer("Kids", 2),
	}, ins)
}

func TestDecodeSignedNarrowLiterals(t *testing.T) {
	var s stream
	s.tag(OpInt8).u8(0xFF).          // -1
		tag(OpInt16).u8(0xFE).u8(0xFF) // -2
	ins, err := Decode(s.b)
	require.NoError(t, err)
	require.Equal(t, []Instruction{Int8(-1), Int16(-2)}, ins)
}

func TestDecodeEmpty(t *testing.T) {
	ins, err := Decode(nil)
	require.NoError(t, err)
	require.Empty(t, ins)
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode([]byte{0x7F})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown opcode")
}

func TestDecodeTruncated(t *testing.T) {
	cases := map[string][]byte{
		"int32 payload cut":  {byte(OpInt32), 0x01, 0x02},
		"string length cut":  {byte(OpString), 0x04},
		"string bytes cut":   {byte(OpString), 0x04, 0x00, 0x00, 0x00, 'a', 'b'},
		"container count":    {byte(OpContainer)},
		"named ctr count":    append([]byte{byte(OpNamedContainer)}, (&stream{}).str("X").b...),
		"float64 payload":    {byte(OpFloat64), 1, 2, 3},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(raw)
			require.ErrorIs(t, err, types.ErrTruncated)
		})
	}
}

func TestDecodeStringLengthLimit(t *testing.T) {
	var s stream
	s.tag(OpString).u32(maxStringLen + 1)
	_, err := Decode(s.b)
	require.ErrorIs(t, err, types.ErrTruncated)
}
