package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/reglacier/gmskit/gms"
	"github.com/reglacier/gmskit/prp"
	"github.com/reglacier/gmskit/scene"
	"github.com/reglacier/gmskit/typedb"
)

// loadedTree builds the fixture scene used by the rendering tests:
//
//	Root (controller "Anim")
//	├── Gate
//	│   └── Door
//	└── Tower
func loadedTree(t *testing.T) *scene.Object {
	t.Helper()

	reg := typedb.NewRegistry()
	require.NoError(t, typedb.RegisterBuiltins(reg))
	require.NoError(t, reg.RegisterTypes([]typedb.Declaration{
		{Name: "ZHero", ShortName: "Hero", Kind: "complex"},
		{
			Name: "ZAnim", ShortName: "Anim", Kind: "complex",
			Fields: []typedb.Field{{Name: "Speed", TypeName: "ZInt32"}},
		},
	}, map[string]uint32{"ZHero": 0x1}))
	require.NoError(t, reg.LinkTypes())

	objects := scene.ObjectsFromEntities([]gms.GeomEntity{
		gms.NewGeomEntity("Root", 0x1, 0, gms.InvalidParent, 0),
		gms.NewGeomEntity("Gate", 0x1, 1, 0, 1),
		gms.NewGeomEntity("Door", 0x1, 2, 1, 2),
		gms.NewGeomEntity("Tower", 0x1, 3, 0, 1),
	})

	err := scene.NewLoader(reg).Load(objects, prp.NewCursor([]prp.Instruction{
		prp.BeginObject(), // Root
		prp.EndObject(),
		prp.Container(1),
		prp.Str("Anim"),
		prp.BeginObject(),
		prp.Int32(5),
		prp.EndObject(),
		prp.Container(2),

		prp.BeginObject(), // Gate
		prp.EndObject(),
		prp.Container(0),
		prp.Container(1),

		prp.BeginObject(), // Door
		prp.EndObject(),
		prp.Container(0),
		prp.Container(0),
		prp.EndObject(),

		prp.EndObject(),

		prp.BeginObject(), // Tower
		prp.EndObject(),
		prp.Container(0),
		prp.Container(0),
		prp.EndObject(),
	}))
	require.NoError(t, err)
	return objects[0]
}

func TestPrintTreeASCIIGolden(t *testing.T) {
	root := loadedTree(t)

	var b bytes.Buffer
	opts := DefaultOptions()
	opts.ASCII = true
	require.NoError(t, New(&b, opts).PrintTree(root))

	g := goldie.New(t)
	g.Assert(t, "tree_ascii", b.Bytes())
}

func TestPrintTreeUnicodeGolden(t *testing.T) {
	root := loadedTree(t)

	var b bytes.Buffer
	require.NoError(t, New(&b, DefaultOptions()).PrintTree(root))

	g := goldie.New(t)
	g.Assert(t, "tree_unicode", b.Bytes())
}

func TestPrintTreeMaxDepth(t *testing.T) {
	root := loadedTree(t)

	var b bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1
	opts.ShowControllers = false
	opts.ShowTypes = false
	require.NoError(t, New(&b, opts).PrintTree(root))
	require.Equal(t, "Root\n", b.String())
}

func TestPrintTreeHidesControllers(t *testing.T) {
	root := loadedTree(t)

	var b bytes.Buffer
	opts := DefaultOptions()
	opts.ShowControllers = false
	require.NoError(t, New(&b, opts).PrintTree(root))
	require.NotContains(t, b.String(), "Anim")
}

func TestPrintTreeNilRoot(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, New(&b, DefaultOptions()).PrintTree(nil))
	require.Zero(t, b.Len())
}

func TestPrintTreeShowTypes(t *testing.T) {
	root := loadedTree(t)

	var b bytes.Buffer
	opts := DefaultOptions()
	opts.ShowTypes = false
	require.NoError(t, New(&b, opts).PrintTree(root))
	for _, line := range strings.Split(b.String(), "\n") {
		require.NotContains(t, line, "type 0x")
	}
}
