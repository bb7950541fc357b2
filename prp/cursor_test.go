package prp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorHeadAndAdvance(t *testing.T) {
	ins := []Instruction{BeginObject(), Int32(7), EndObject()}
	cur := NewCursor(ins)

	require.Equal(t, 3, cur.Len())
	require.False(t, cur.Empty())
	require.Equal(t, OpBeginObject, cur.Op())

	head, ok := cur.Head()
	require.True(t, ok)
	require.Equal(t, OpBeginObject, head.Op)

	cur, ok = cur.Advance(1)
	require.True(t, ok)
	require.Equal(t, OpInt32, cur.Op())

	cur, ok = cur.Advance(2)
	require.True(t, ok)
	require.True(t, cur.Empty())
	require.Equal(t, OpInvalid, cur.Op())

	_, ok = cur.Head()
	require.False(t, ok)
	_, ok = cur.Advance(1)
	require.False(t, ok)
}

func TestCursorSliceBounds(t *testing.T) {
	cur := NewCursor([]Instruction{Int32(1), Int32(2), Int32(3), Int32(4)})

	mid, ok := cur.Slice(1, 2)
	require.True(t, ok)
	require.Equal(t, 2, mid.Len())
	head, _ := mid.Head()
	require.Equal(t, int64(2), head.Operand.I64)

	_, ok = cur.Slice(3, 2)
	require.False(t, ok)
	_, ok = cur.Slice(-1, 1)
	require.False(t, ok)
	_, ok = cur.Slice(4, 0)
	require.True(t, ok, "empty tail slice is valid")

	_, ok = cur.At(3)
	require.True(t, ok)
	_, ok = cur.At(4)
	require.False(t, ok)
}

func TestOpCodePredicates(t *testing.T) {
	require.True(t, OpBeginObject.IsBegin())
	require.True(t, OpBeginNamedObject.IsBegin())
	require.False(t, OpEndObject.IsBegin())

	require.True(t, OpContainer.IsContainer())
	require.True(t, OpNamedContainer.IsContainer())
	require.False(t, OpString.IsContainer())

	require.True(t, OpBool.IsTrivial())
	require.True(t, OpString.IsTrivial())
	require.False(t, OpBeginObject.IsTrivial())
	require.False(t, OpInvalid.IsTrivial())
}

func TestInstructionString(t *testing.T) {
	require.Equal(t, `Container(3)`, Container(3).String())
	require.Equal(t, `String("Anim")`, Str("Anim").String())
	require.Equal(t, `NamedContainer("Kids", 2)`, NamedContainer("Kids", 2).String())
	require.Equal(t, `Int32(-5)`, Int32(-5).String())
	require.Equal(t, `EndObject`, EndObject().String())
}
