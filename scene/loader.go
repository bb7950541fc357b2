package scene

import (
	"fmt"

	"github.com/reglacier/gmskit/pkg/types"
	"github.com/reglacier/gmskit/prp"
	"github.com/reglacier/gmskit/typedb"
)

// DefaultMaxDepth bounds the loader's recursion. Real scenes nest a few
// dozen levels at most; the guard exists for corrupted children counts,
// not for legitimate data.
const DefaultMaxDepth = 512

// TypeNotFoundError reports a type database miss while visiting an
// object: either the object's own type hash or a controller's short name
// resolved to nothing. It unwraps to types.ErrTypeNotFound.
type TypeNotFoundError struct {
	ObjectIndex uint32
	Hash        uint32 // zero when the lookup was by short name
	ShortName   string // empty when the lookup was by hash
}

func (e *TypeNotFoundError) Error() string {
	if e.ShortName != "" {
		return fmt.Sprintf("scene: object %d: controller type %q not found", e.ObjectIndex, e.ShortName)
	}
	return fmt.Sprintf("scene: object %d: type 0x%08X not found", e.ObjectIndex, e.Hash)
}

func (e *TypeNotFoundError) Unwrap() error { return types.ErrTypeNotFound }

// VisitError reports a structural failure while visiting an object. It
// unwraps to types.ErrMalformedStream, or to types.ErrStreamExhausted
// when a stream ran out mid-structure.
type VisitError struct {
	ObjectIndex uint32
	Reason      string

	err error
}

func (e *VisitError) Error() string {
	return fmt.Sprintf("scene: object %d: %s", e.ObjectIndex, e.Reason)
}

func (e *VisitError) Unwrap() error { return e.err }

// Loader interprets a property instruction stream against a pre-order
// object list, producing the scene tree in place.
type Loader struct {
	Registry *typedb.Registry

	// MaxDepth guards the recursion; zero means DefaultMaxDepth.
	MaxDepth int
}

// NewLoader returns a Loader over a linked registry.
func NewLoader(reg *typedb.Registry) *Loader {
	return &Loader{Registry: reg, MaxDepth: DefaultMaxDepth}
}

// Load visits objects[0] against the full instruction stream, wiring
// properties, controllers, and children into the objects. Empty input is
// a no-op. On error the object list must be discarded: the streams are
// desynchronized and no partial tree is usable.
func (l *Loader) Load(objects []*Object, cur prp.Cursor) error {
	if len(objects) == 0 || cur.Empty() {
		return nil
	}
	if l.Registry == nil {
		return fmt.Errorf("scene: load: nil registry")
	}
	if !l.Registry.Linked() {
		return fmt.Errorf("scene: load: %w", types.ErrNotLinked)
	}

	maxDepth := l.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	ctx := &visitContext{reg: l.Registry, maxDepth: maxDepth}
	_, _, err := ctx.visit(nil, objects[0], objects[1:], cur, 0)
	return err
}

type visitContext struct {
	reg       *typedb.Registry
	maxDepth  int
	objectIdx uint32
}

func (c *visitContext) malformed(format string, args ...any) error {
	return &VisitError{
		ObjectIndex: c.objectIdx,
		Reason:      fmt.Sprintf(format, args...),
		err:         types.ErrMalformedStream,
	}
}

func (c *visitContext) exhausted(format string, args ...any) error {
	return &VisitError{
		ObjectIndex: c.objectIdx,
		Reason:      fmt.Sprintf(format, args...),
		err:         types.ErrStreamExhausted,
	}
}

// expect fails with an exhaustion error on an empty cursor and a
// malformed-stream error otherwise.
func (c *visitContext) expect(cur prp.Cursor, what string) error {
	if cur.Empty() {
		return c.exhausted("instruction stream ended, expected %s", what)
	}
	return c.malformed("unexpected %s, expected %s", cur.Op(), what)
}

// visit interprets one object definition: properties, controllers, then
// children, strictly left to right. The cursor and the remaining object
// list are threaded through by value and returned advanced past
// everything the subtree consumed.
func (c *visitContext) visit(parent, current *Object, objects []*Object, cur prp.Cursor, depth int) ([]*Object, prp.Cursor, error) {
	if depth >= c.maxDepth {
		return nil, cur, c.malformed("children nested deeper than %d levels", c.maxDepth)
	}
	if parent != nil {
		parent.attachChild(current)
	}

	// ------------ STAGE 1: PROPERTIES ------------
	if !cur.Op().IsBegin() {
		return nil, cur, c.expect(cur, "BeginObject/BeginNamedObject")
	}
	cur, _ = cur.Advance(1)

	typeID, ok := c.reg.FindTypeByHash(current.entity.TypeID())
	if !ok {
		return nil, cur, &TypeNotFoundError{ObjectIndex: c.objectIdx, Hash: current.entity.TypeID()}
	}
	objectType := c.reg.ResolveID(typeID)

	if ok, _ := objectType.Verify(cur); !ok {
		return nil, cur, c.malformed("properties of type %q failed verification", objectType.Name())
	}
	properties, rest := objectType.Map(cur)
	if properties == nil {
		return nil, rest, c.malformed("properties of type %q failed to map", objectType.Name())
	}
	cur = rest

	if cur.Op() != prp.OpEndObject {
		return nil, cur, c.expect(cur, "EndObject closing the object definition")
	}
	cur, _ = cur.Advance(1)

	properties.Freeze()
	current.setProperties(properties)

	// ------------ STAGE 2: CONTROLLERS ------------
	head, ok := cur.Head()
	if !ok || !head.Op.IsContainer() {
		return nil, cur, c.expect(cur, "Container/NamedContainer with controllers")
	}
	controllersCount := head.Count()
	if controllersCount < 0 {
		return nil, cur, c.malformed("negative controllers count %d", controllersCount)
	}
	cur, _ = cur.Advance(1)

	for i := int32(0); i < controllersCount; i++ {
		head, ok = cur.Head()
		if !ok || head.Op != prp.OpString {
			return nil, cur, c.expect(cur, "String naming the controller")
		}
		controllerName := head.Operand.Str
		cur, _ = cur.Advance(1)

		if !cur.Op().IsBegin() {
			return nil, cur, c.expect(cur, "BeginObject/BeginNamedObject opening the controller")
		}
		cur, _ = cur.Advance(1)

		ctID, ok := c.reg.FindTypeByShortName(controllerName)
		if !ok {
			return nil, cur, &TypeNotFoundError{ObjectIndex: c.objectIdx, ShortName: controllerName}
		}
		controllerType := c.reg.ResolveID(ctID)
		if controllerType.Kind() != typedb.KindComplex {
			return nil, cur, c.malformed("type %q is not a valid controller type (%s, want complex)",
				controllerType.Name(), controllerType.Kind())
		}

		value, rest := controllerType.Map(cur)
		if value == nil {
			return nil, rest, c.malformed("failed to map controller %q", controllerName)
		}
		cur = rest

		if cur.Op() != prp.OpEndObject && controllerType.AllowsUnexposedInstructions() {
			// Capture everything up to the nearest EndObject verbatim.
			scan, skipped := cur, 0
			for !scan.Empty() && scan.Op() != prp.OpEndObject {
				scan, _ = scan.Advance(1)
				skipped++
			}
			if scan.Empty() {
				return nil, cur, c.exhausted(
					"controller %q has unexposed instructions but no EndObject ahead", controllerName)
			}
			trailing, _ := cur.Slice(0, skipped)
			if err := value.AppendTrailing(trailing.Instructions()); err != nil {
				return nil, cur, err
			}
			cur = scan
		}

		if cur.Op() != prp.OpEndObject {
			return nil, cur, c.expect(cur, "EndObject closing the controller")
		}
		cur, _ = cur.Advance(1)

		value.Freeze()
		current.setController(controllerName, value)
	}

	// ------------ STAGE 3: CHILDREN ------------
	head, ok = cur.Head()
	if !ok || !head.Op.IsContainer() {
		return nil, cur, c.expect(cur, "Container/NamedContainer with children")
	}
	childrenCount := head.Count()
	if childrenCount < 0 {
		return nil, cur, c.malformed("negative children count %d", childrenCount)
	}
	cur, _ = cur.Advance(1)

	for i := int32(0); i < childrenCount; i++ {
		if len(objects) == 0 {
			return nil, cur, c.exhausted(
				"entity list exhausted, %d of %d children missing", childrenCount-i, childrenCount)
		}
		child := objects[0]
		objects = objects[1:]

		c.objectIdx++
		var err error
		objects, cur, err = c.visit(current, child, objects, cur, depth+1)
		if err != nil {
			return nil, cur, err
		}

		// The child consumed its own terminators inside the recursion;
		// one more EndObject closes the child's slot in this container.
		if cur.Op() != prp.OpEndObject {
			return nil, cur, c.expect(cur, "EndObject closing the child slot")
		}
		cur, _ = cur.Advance(1)
	}

	return objects, cur, nil
}
