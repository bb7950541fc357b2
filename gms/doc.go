// Package gms decodes geometry-entity records from a Glacier scene
// archive.
//
// A GMS archive carries a flat pre-order table of entity shells: one
// 64-byte metadata record per scene object, with names stored out of line
// in a shared string buffer. The table fixes the shape and order of the
// scene tree; the matching property instruction stream (package prp)
// carries the per-object property data. Package scene joins the two.
//
// Record layout, little-endian:
//
//	0x00  u32  name offset into the shared string buffer (zero-terminated,
//	           Windows-1252)
//	0x04  u32  parent record index, or InvalidParent for the root
//	0x08  u32  reserved
//	0x0C  u32  primitive id
//	0x10  u32  reserved
//	0x14  u32  type id (hash into the type database)
//	0x18  u32  reserved
//	0x1C  u32  collision bits
//	0x20  u32  reserved ×4
//	0x30  u32  instance id
//	0x34  u32  reserved ×3
//
// Reserved words are preserved verbatim; nothing in the read path
// interprets them.
package gms
