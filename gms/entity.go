package gms

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/reglacier/gmskit/internal/buf"
)

// InvalidParent is the sentinel parent index marking an entity as the
// scene root. It is not a real index; consumers must special-case it.
const InvalidParent uint32 = 0xFFFFFFEE

// RecordSize is the on-disk size of one entity metadata record.
const RecordSize = 0x40

// GeomEntity is one scene node's pre-decoded shell: everything the
// archive says about an object except its properties. Entities are
// filled once by Deserialize and read-only thereafter.
type GeomEntity struct {
	name        string
	parentIndex uint32
	depthLevel  uint32
	primitiveID uint32
	typeID      uint32
	coliBits    uint32
	instanceID  uint32
	reserved    [10]uint32
}

// NewGeomEntity builds an entity shell directly. Intended for
// collaborators that decode entity metadata through other paths; archive
// decoding goes through Deserialize.
func NewGeomEntity(name string, typeID, instanceID, parentIndex, depthLevel uint32) GeomEntity {
	return GeomEntity{
		name:        name,
		typeID:      typeID,
		instanceID:  instanceID,
		parentIndex: parentIndex,
		depthLevel:  depthLevel,
	}
}

// Name returns the entity's name from the shared string buffer.
func (e *GeomEntity) Name() string { return e.name }

// TypeID returns the type hash resolved against the type database.
func (e *GeomEntity) TypeID() uint32 { return e.typeID }

// InstanceID returns the per-scene instance id.
func (e *GeomEntity) InstanceID() uint32 { return e.instanceID }

// PrimitiveID returns the id of the entity's primitive buffer chunk.
func (e *GeomEntity) PrimitiveID() uint32 { return e.primitiveID }

// ColiBits returns the collision bits.
func (e *GeomEntity) ColiBits() uint32 { return e.coliBits }

// DepthLevel returns the entity's depth in the scene tree (root = 0).
func (e *GeomEntity) DepthLevel() uint32 { return e.depthLevel }

// ParentIndex returns the index of the parent record, or InvalidParent
// for the root.
func (e *GeomEntity) ParentIndex() uint32 { return e.parentIndex }

// IsRoot reports whether the entity has no parent.
func (e *GeomEntity) IsRoot() bool { return e.parentIndex == InvalidParent }

// Reserved returns the record's reserved words verbatim, in record order.
func (e *GeomEntity) Reserved() [10]uint32 { return e.reserved }

// String implements the Stringer interface for GeomEntity.
func (e *GeomEntity) String() string {
	return fmt.Sprintf("GeomEntity(%q type=0x%08X instance=0x%08X depth=%d)",
		e.name, e.typeID, e.instanceID, e.depthLevel)
}

// Deserialize fills one entity record from two cursors: meta positioned
// at the record's metadata, and strs over the shared string buffer the
// record's name offset points into. It is a pure transfer: no semantic
// validation beyond cursor bounds, so truncated input is the only
// failure.
func Deserialize(e *GeomEntity, depthLevel uint32, meta, strs *buf.Reader) error {
	start := meta.Offset()
	fields, err := meta.Bytes(RecordSize)
	if err != nil {
		return fmt.Errorf("gms: entity record at 0x%X: %w", start, err)
	}

	nameOffset := buf.U32LE(fields[0x00:])
	e.parentIndex = buf.U32LE(fields[0x04:])
	e.reserved[0] = buf.U32LE(fields[0x08:])
	e.primitiveID = buf.U32LE(fields[0x0C:])
	e.reserved[1] = buf.U32LE(fields[0x10:])
	e.typeID = buf.U32LE(fields[0x14:])
	e.reserved[2] = buf.U32LE(fields[0x18:])
	e.coliBits = buf.U32LE(fields[0x1C:])
	e.reserved[3] = buf.U32LE(fields[0x20:])
	e.reserved[4] = buf.U32LE(fields[0x24:])
	e.reserved[5] = buf.U32LE(fields[0x28:])
	e.reserved[6] = buf.U32LE(fields[0x2C:])
	e.instanceID = buf.U32LE(fields[0x30:])
	e.reserved[7] = buf.U32LE(fields[0x34:])
	e.reserved[8] = buf.U32LE(fields[0x38:])
	e.reserved[9] = buf.U32LE(fields[0x3C:])
	e.depthLevel = depthLevel

	raw, err := strs.CStringAt(int(nameOffset))
	if err != nil {
		return fmt.Errorf("gms: entity record at 0x%X: name: %w", start, err)
	}
	name, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return fmt.Errorf("gms: entity record at 0x%X: decode name: %w", start, err)
	}
	e.name = string(name)
	return nil
}
