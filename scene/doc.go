// Package scene reconstructs the scene object tree of a Glacier archive.
//
// The inputs are two independently produced, structurally parallel
// pre-order encodings of one tree: the flat geometry-entity table
// (package gms) and the property instruction stream (package prp). The
// Loader walks both in lockstep under the guidance of the type database
// (package typedb) and fails immediately on any divergence: a missing
// terminator, an unknown type, a count mismatch, or either stream
// running out. There is no recovery: malformed data cannot be skipped
// without desynchronizing every following sibling, so a failed load
// yields no tree at all.
package scene
