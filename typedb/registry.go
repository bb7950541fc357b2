package typedb

import (
	"fmt"

	"github.com/reglacier/gmskit/pkg/types"
)

// Registry owns every Type and serves name, short-name, and hash lookups.
//
// The zero of the lifecycle is unloaded; RegisterTypes/RegisterType insert
// declarations, LinkTypes resolves references and seals. All mutation is
// rejected once sealed, so post-link lookups are safe to share across
// goroutines without locking.
type Registry struct {
	sealed bool
	linked bool

	arena   []*Type
	byName  map[string]TypeID
	byShort map[string]TypeID
	byHash  map[uint32]TypeID
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset clears all registered types and unseals the registry.
func (r *Registry) Reset() {
	r.sealed = false
	r.linked = false
	r.arena = nil
	r.byName = make(map[string]TypeID)
	r.byShort = make(map[string]TypeID)
	r.byHash = make(map[uint32]TypeID)
}

// Sealed reports whether the registry rejects further mutation.
func (r *Registry) Sealed() bool { return r.sealed }

// Linked reports whether LinkTypes has run.
func (r *Registry) Linked() bool { return r.linked }

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.arena) }

// RegisterType inserts a hand-built type. This is the bootstrap entry
// point for built-ins; declaration files go through RegisterTypes. The
// registry takes ownership on success. A name collision rejects the
// insertion and leaves the registry unchanged.
func (r *Registry) RegisterType(t *Type) (TypeID, error) {
	if t == nil {
		return InvalidTypeID, fmt.Errorf("typedb: register nil type")
	}
	if r.sealed {
		return InvalidTypeID, fmt.Errorf("typedb: register %q: %w", t.name, types.ErrSealed)
	}
	if t.name == "" {
		return InvalidTypeID, fmt.Errorf("typedb: register type with empty name")
	}
	if _, exists := r.byName[t.name]; exists {
		return InvalidTypeID, fmt.Errorf("typedb: register %q: %w", t.name, types.ErrDuplicateType)
	}

	id := TypeID(len(r.arena))
	t.id = id
	t.reg = r
	r.arena = append(r.arena, t)
	r.byName[t.name] = id
	if t.shortName != "" {
		// First registration wins; short names are lookup aliases and
		// legacy databases repeat a few of them.
		if _, exists := r.byShort[t.shortName]; !exists {
			r.byShort[t.shortName] = id
		}
	}
	for _, h := range t.hashes {
		r.byHash[h] = id
	}
	return id, nil
}

// RegisterTypes bulk-loads declarations plus a name-to-hash table. Any
// duplicate name or malformed declaration fails the whole load; callers
// must treat the error as fatal.
func (r *Registry) RegisterTypes(decls []Declaration, nameToHash map[string]uint32) error {
	if r.sealed {
		return fmt.Errorf("typedb: register types: %w", types.ErrSealed)
	}
	for i := range decls {
		t, err := declToType(&decls[i])
		if err != nil {
			return fmt.Errorf("typedb: declaration %d: %w", i, err)
		}
		if _, err := r.RegisterType(t); err != nil {
			return err
		}
	}
	for name, hash := range nameToHash {
		if err := r.AddHashAssociation(hash, name); err != nil {
			return err
		}
	}
	return nil
}

// AddHashAssociation binds an additional (typically historical) hash to
// an already registered type.
func (r *Registry) AddHashAssociation(hash uint32, name string) error {
	if r.sealed {
		return fmt.Errorf("typedb: associate hash 0x%08X: %w", hash, types.ErrSealed)
	}
	id, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("typedb: associate hash 0x%08X with %q: %w", hash, name, types.ErrTypeNotFound)
	}
	if prev, exists := r.byHash[hash]; exists {
		if prev == id {
			return nil
		}
		return fmt.Errorf("typedb: hash 0x%08X already bound to %q: %w",
			hash, r.arena[prev].name, types.ErrDuplicateType)
	}
	r.byHash[hash] = id
	t := r.arena[id]
	t.hashes = append(t.hashes, hash)
	return nil
}

// LinkTypes resolves forward type-to-type references (parents, fields,
// array elements), flattens inherited fields, and seals the registry.
// It must run exactly once, after every registration.
func (r *Registry) LinkTypes() error {
	if r.linked {
		return fmt.Errorf("typedb: link types: already linked: %w", types.ErrSealed)
	}

	for _, t := range r.arena {
		switch t.kind {
		case KindArray:
			id, ok := r.byName[t.elemName]
			if !ok {
				return fmt.Errorf("typedb: link %q: element type %q: %w",
					t.name, t.elemName, types.ErrTypeNotFound)
			}
			t.elemID = id

		case KindComplex:
			if t.parentName != "" {
				id, ok := r.byName[t.parentName]
				if !ok {
					return fmt.Errorf("typedb: link %q: parent type %q: %w",
						t.name, t.parentName, types.ErrTypeNotFound)
				}
				if r.arena[id].kind != KindComplex {
					return fmt.Errorf("typedb: link %q: parent %q is %s, want complex",
						t.name, t.parentName, r.arena[id].kind)
				}
				t.parentID = id
			}
			for i := range t.fields {
				id, ok := r.byName[t.fields[i].TypeName]
				if !ok {
					return fmt.Errorf("typedb: link %q: field %q type %q: %w",
						t.name, t.fields[i].Name, t.fields[i].TypeName, types.ErrTypeNotFound)
				}
				t.fields[i].typeID = id
			}
		}
	}

	// Flatten inherited fields, detecting parent cycles.
	flat := make(map[TypeID][]Field, len(r.arena))
	for _, t := range r.arena {
		if t.kind != KindComplex {
			continue
		}
		if _, err := r.flatten(t, flat, make(map[TypeID]bool)); err != nil {
			return err
		}
	}
	for _, t := range r.arena {
		if t.kind == KindComplex {
			t.flat = flat[t.id]
		}
	}

	r.linked = true
	r.sealed = true
	return nil
}

func (r *Registry) flatten(t *Type, memo map[TypeID][]Field, visiting map[TypeID]bool) ([]Field, error) {
	if f, ok := memo[t.id]; ok {
		return f, nil
	}
	if visiting[t.id] {
		return nil, fmt.Errorf("typedb: link %q: inheritance cycle", t.name)
	}
	visiting[t.id] = true

	var out []Field
	if t.parentID != InvalidTypeID {
		parent, err := r.flatten(r.arena[t.parentID], memo, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, parent...)
	}
	out = append(out, t.fields...)
	memo[t.id] = out
	return out, nil
}

// FindTypeByName returns the id of the type with the given unique name.
func (r *Registry) FindTypeByName(name string) (TypeID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// FindTypeByShortName returns the id of the type with the given short
// name. Controllers resolve through this lookup.
func (r *Registry) FindTypeByShortName(short string) (TypeID, bool) {
	id, ok := r.byShort[short]
	return id, ok
}

// FindTypeByHash returns the id of the type bound to the given hash.
func (r *Registry) FindTypeByHash(hash uint32) (TypeID, bool) {
	id, ok := r.byHash[hash]
	return id, ok
}

// ResolveID returns the Type for an id, or nil for an invalid id. The
// returned pointer is registry-owned and must be treated as read-only.
func (r *Registry) ResolveID(id TypeID) *Type {
	if id == InvalidTypeID || int64(id) >= int64(len(r.arena)) {
		return nil
	}
	return r.arena[id]
}

// ForEach calls fn for every registered type in registration order until
// fn returns false.
func (r *Registry) ForEach(fn func(*Type) bool) {
	for _, t := range r.arena {
		if !fn(t) {
			return
		}
	}
}
