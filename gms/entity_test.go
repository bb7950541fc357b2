package gms

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reglacier/gmskit/internal/buf"
	"github.com/reglacier/gmskit/pkg/types"
)

// rec builds one 64-byte entity record with u32 fields at the given
// offsets; unset words stay zero.
func rec(fields map[int]uint32) []byte {
	b := make([]byte, RecordSize)
	for off, v := range fields {
		binary.LittleEndian.PutUint32(b[off:], v)
	}
	return b
}

// strbuf builds a shared string buffer and returns it together with the
// offset of every name.
func strbuf(names ...string) ([]byte, map[string]uint32) {
	var b []byte
	offs := make(map[string]uint32, len(names))
	for _, n := range names {
		offs[n] = uint32(len(b))
		b = append(b, n...)
		b = append(b, 0)
	}
	return b, offs
}

func TestDeserializeFillsRecord(t *testing.T) {
	strs, offs := strbuf("GateHouse")
	raw := rec(map[int]uint32{
		0x00: offs["GateHouse"],
		0x04: InvalidParent,
		0x08: 0xAAAA0001, // reserved
		0x0C: 0x00000007, // primitive id
		0x14: 0x00211FE0, // type id
		0x1C: 0x0000FF00, // coli bits
		0x30: 0x12345678, // instance id
		0x3C: 0xAAAA0002, // reserved
	})

	var e GeomEntity
	err := Deserialize(&e, 3, buf.NewReader(raw), buf.NewReader(strs))
	require.NoError(t, err)

	require.Equal(t, "GateHouse", e.Name())
	require.Equal(t, uint32(0x00211FE0), e.TypeID())
	require.Equal(t, uint32(0x12345678), e.InstanceID())
	require.Equal(t, uint32(0x00000007), e.PrimitiveID())
	require.Equal(t, uint32(0x0000FF00), e.ColiBits())
	require.Equal(t, uint32(3), e.DepthLevel())
	require.True(t, e.IsRoot())
	require.Equal(t, InvalidParent, e.ParentIndex())

	// Reserved words survive verbatim, in record order.
	reserved := e.Reserved()
	require.Equal(t, uint32(0xAAAA0001), reserved[0])
	require.Equal(t, uint32(0xAAAA0002), reserved[9])
}

func TestDeserializeLegacyNameEncoding(t *testing.T) {
	// "Café" in Windows-1252: é = 0xE9.
	strs := []byte{'C', 'a', 'f', 0xE9, 0}
	raw := rec(map[int]uint32{0x04: InvalidParent})

	var e GeomEntity
	require.NoError(t, Deserialize(&e, 0, buf.NewReader(raw), buf.NewReader(strs)))
	require.Equal(t, "Café", e.Name())
}

func TestDeserializeTruncatedRecord(t *testing.T) {
	var e GeomEntity
	err := Deserialize(&e, 0, buf.NewReader(make([]byte, RecordSize-1)), buf.NewReader(nil))
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestDeserializeBadNameOffset(t *testing.T) {
	strs, _ := strbuf("A")
	var e GeomEntity

	// Offset past the string buffer.
	raw := rec(map[int]uint32{0x00: 0x1000, 0x04: InvalidParent})
	err := Deserialize(&e, 0, buf.NewReader(raw), buf.NewReader(strs))
	require.ErrorIs(t, err, types.ErrTruncated)

	// Unterminated name.
	raw = rec(map[int]uint32{0x00: 0, 0x04: InvalidParent})
	err = Deserialize(&e, 0, buf.NewReader(raw), buf.NewReader([]byte{'X'}))
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestDeserializeAdvancesMetaCursor(t *testing.T) {
	strs, _ := strbuf("A", "B")
	meta := append(rec(map[int]uint32{0x00: 0, 0x04: InvalidParent}),
		rec(map[int]uint32{0x00: 2, 0x04: 0})...)
	r := buf.NewReader(meta)

	var first, second GeomEntity
	require.NoError(t, Deserialize(&first, 0, r, buf.NewReader(strs)))
	require.Equal(t, RecordSize, r.Offset())
	require.NoError(t, Deserialize(&second, 1, r, buf.NewReader(strs)))
	require.Equal(t, "A", first.Name())
	require.Equal(t, "B", second.Name())
	require.Equal(t, uint32(0), second.ParentIndex())
}
