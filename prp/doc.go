// Package prp models the property instruction stream of a Glacier scene
// archive.
//
// # Overview
//
// A PRP stream is an ordered sequence of opcode-tagged instructions. Object
// definitions are encoded as three sections per object:
//
//	[BeginObject|BeginNamedObject]
//	    (property literals, per the object's type schema)
//	[EndObject]
//	[Container - controller count]
//	    [String - controller name]
//	    [BeginObject] ... [EndObject]        (per controller)
//	[Container - children count]
//	    (child object definitions, recursively)
//
// The package provides the Instruction value type, the OpCode enumeration,
// a compact binary stream decoder (Decode), and Cursor, a bounds-checked
// forward view over a decoded stream. All stream positions live in Cursor
// values; advancement is re-slicing, so consumers pass cursors by value and
// return the remainder ("consume, return remainder").
//
// Interpretation of a stream against a scene's entity list is implemented
// by the scene package.
package prp
