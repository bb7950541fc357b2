package typedb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDB = `
types:
  - name: ZVector3
    short_name: Vector3
    kind: array
    element: ZFloat32
    length: 3
  - name: ZGEOM
    short_name: GEOM
    kind: complex
    allow_unexposed: true
    fields:
      - { name: Visible, type: ZBool }
      - { name: Position, type: ZVector3 }
  - name: ZSTDOBJ
    short_name: STDOBJ
    kind: complex
    parent: ZGEOM
    fields:
      - { name: Label, type: ZString }
hashes:
  ZGEOM: "0x00211FE0"
  ZSTDOBJ: "554323"
`

func TestLoadDatabase(t *testing.T) {
	db, err := LoadDatabase(strings.NewReader(sampleDB))
	require.NoError(t, err)
	require.Len(t, db.Types, 3)

	hashes, err := db.HashTable()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00211FE0), hashes["ZGEOM"])
	require.Equal(t, uint32(554323), hashes["ZSTDOBJ"])

	reg := NewRegistry()
	require.NoError(t, RegisterBuiltins(reg))
	require.NoError(t, db.Register(reg))
	require.NoError(t, reg.LinkTypes())

	id, ok := reg.FindTypeByHash(0x00211FE0)
	require.True(t, ok)
	geom := reg.ResolveID(id)
	require.Equal(t, "ZGEOM", geom.Name())
	require.True(t, geom.AllowsUnexposedInstructions())

	std := typeByName(t, reg, "ZSTDOBJ")
	require.Equal(t, []string{"Visible", "Position", "Label"}, fieldNames(std))
}

func TestLoadDatabaseBadYAML(t *testing.T) {
	_, err := LoadDatabase(strings.NewReader("types: [\n"))
	require.Error(t, err)
}

func TestHashTableBadHash(t *testing.T) {
	db := &Database{Hashes: map[string]string{"ZX": "0xGG"}}
	_, err := db.HashTable()
	require.Error(t, err)
}

func TestParseHash(t *testing.T) {
	v, err := ParseHash("0x00A1B2C3")
	require.NoError(t, err)
	require.Equal(t, uint32(0x00A1B2C3), v)

	v, err = ParseHash(" 42 ")
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)

	_, err = ParseHash("0x1FFFFFFFF")
	require.Error(t, err, "hash must fit 32 bits")
}

func TestDeclarationValidation(t *testing.T) {
	cases := []Declaration{
		{Name: "ZX", Kind: "mystery"},
		{Name: "ZX", Kind: "trivial", Op: "quaternion"},
		{Name: "ZX", Kind: "array", Element: "", Length: 3},
		{Name: "ZX", Kind: "array", Element: "ZBool", Length: 0},
	}
	for _, d := range cases {
		reg := NewRegistry()
		require.NoError(t, RegisterBuiltins(reg))
		require.Error(t, reg.RegisterTypes([]Declaration{d}, nil), "decl %+v", d)
	}
}
