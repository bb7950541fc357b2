package scene

import (
	"github.com/reglacier/gmskit/gms"
	"github.com/reglacier/gmskit/typedb"
)

// Object is one node of the reconstructed scene tree: a geometry-entity
// shell joined with its interpreted properties and controllers. Objects
// own their children; the parent link is a non-owning back-reference.
type Object struct {
	entity *gms.GeomEntity

	properties *typedb.Value

	// Controller names are unique; ctrlNames preserves first-insertion
	// order for deterministic iteration.
	controllers map[string]*typedb.Value
	ctrlNames   []string

	parent   *Object
	children []*Object
}

// NewObject returns an empty scene object wrapping entity.
func NewObject(entity *gms.GeomEntity) *Object {
	return &Object{
		entity:      entity,
		controllers: make(map[string]*typedb.Value),
	}
}

// ObjectsFromEntities builds one unlinked Object per entity, preserving
// the table's pre-order. The Loader wires parents, children, properties,
// and controllers.
func ObjectsFromEntities(entities []gms.GeomEntity) []*Object {
	objects := make([]*Object, len(entities))
	for i := range entities {
		objects[i] = NewObject(&entities[i])
	}
	return objects
}

// Entity returns the read-only geometry-entity shell.
func (o *Object) Entity() *gms.GeomEntity { return o.entity }

// Name returns the entity name.
func (o *Object) Name() string { return o.entity.Name() }

// Properties returns the object's interpreted property tree, nil before
// a successful load.
func (o *Object) Properties() *typedb.Value { return o.properties }

// Controller returns the controller value stored under name.
func (o *Object) Controller(name string) (*typedb.Value, bool) {
	v, ok := o.controllers[name]
	return v, ok
}

// ControllerNames returns the controller names in first-insertion order.
func (o *Object) ControllerNames() []string { return o.ctrlNames }

// Parent returns the owning parent, nil for the root.
func (o *Object) Parent() *Object { return o.parent }

// Children returns the owned children in stream order.
func (o *Object) Children() []*Object { return o.children }

// Walk visits the subtree rooted at o in pre-order until fn returns
// false.
func (o *Object) Walk(fn func(*Object) bool) bool {
	if !fn(o) {
		return false
	}
	for _, c := range o.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

func (o *Object) setProperties(v *typedb.Value) { o.properties = v }

// setController stores v under name. A repeated name overwrites the
// earlier value and keeps its position (last write wins).
func (o *Object) setController(name string, v *typedb.Value) {
	if _, exists := o.controllers[name]; !exists {
		o.ctrlNames = append(o.ctrlNames, name)
	}
	o.controllers[name] = v
}

func (o *Object) attachChild(child *Object) {
	child.parent = o
	o.children = append(o.children, child)
}
