package gms

import (
	"fmt"

	"github.com/reglacier/gmskit/internal/buf"
)

// DecodeEntities reads the whole entity table: a u32 record count
// followed by count 64-byte records, names resolved against strs.
//
// The table is a pre-order flattening of the scene tree, so every
// record's parent index must be either InvalidParent or the index of an
// earlier record; anything else is structural corruption. Depth levels
// are derived from the parent chain (root = 0).
func DecodeEntities(meta, strs []byte) ([]GeomEntity, error) {
	r := buf.NewReader(meta)
	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("gms: entity count: %w", err)
	}
	if _, err := buf.CheckListBounds(len(meta), r.Offset(), int(count), RecordSize); err != nil {
		return nil, fmt.Errorf("gms: entity table: %w", err)
	}

	strsReader := buf.NewReader(strs)
	entities := make([]GeomEntity, count)
	for i := range entities {
		// The parent index fixes the record's depth, so peek it before
		// handing the record to Deserialize.
		parent := buf.U32LE(meta[r.Offset()+0x04:])

		var depth uint32
		switch {
		case parent == InvalidParent:
			if i != 0 {
				return nil, fmt.Errorf("gms: entity %d: second root in table", i)
			}
		case int64(parent) >= int64(i):
			return nil, fmt.Errorf("gms: entity %d: parent index %d is not an earlier record",
				i, parent)
		default:
			depth = entities[parent].depthLevel + 1
		}

		if err := Deserialize(&entities[i], depth, r, strsReader); err != nil {
			return nil, err
		}
	}
	return entities, nil
}
