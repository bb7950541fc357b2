// Package typedb implements the runtime type database for Glacier scene
// properties: the schema model (Type), the decoded property tree (Value),
// and the Registry that owns every Type.
//
// # Lifecycle
//
// A Registry goes through a two-phase load at startup:
//
//	reg := typedb.NewRegistry()
//	typedb.RegisterBuiltins(reg)
//	reg.RegisterTypes(db.Types, hashes)   // phase 1: insert declarations
//	reg.LinkTypes()                       // phase 2: resolve references, seal
//
// LinkTypes resolves forward references (parent types, field types, array
// elements) and seals the registry. After sealing, mutation fails with
// types.ErrSealed and concurrent read-only lookups are safe without
// locking. Reset returns the registry to the unloaded state.
//
// Types are owned by exactly one Registry and referenced everywhere else
// by TypeID, a stable arena index. Lookups return TypeID; ResolveID turns
// an id back into a *Type when schema details are needed.
package typedb
