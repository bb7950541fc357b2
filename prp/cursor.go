package prp

// Cursor is a bounds-checked forward view over an instruction stream.
//
// A Cursor owns nothing and carries no hidden position state: the cursor
// *is* the position. Consumers advance by calling Advance or Slice, which
// return new cursors over the same backing stream. Cursors are passed by
// value; copying one is free.
type Cursor struct {
	ins []Instruction
}

// NewCursor returns a cursor over the full stream.
func NewCursor(ins []Instruction) Cursor {
	return Cursor{ins: ins}
}

// Len returns the number of instructions remaining in the view.
func (c Cursor) Len() int { return len(c.ins) }

// Empty reports whether the view has no instructions left.
func (c Cursor) Empty() bool { return len(c.ins) == 0 }

// Head returns the first instruction of the view.
func (c Cursor) Head() (Instruction, bool) {
	if len(c.ins) == 0 {
		return Instruction{}, false
	}
	return c.ins[0], true
}

// Op returns the opcode at the head of the view, or OpInvalid when the
// view is empty. Convenient for head checks that treat exhaustion as a
// mismatch to be diagnosed by the caller.
func (c Cursor) Op() OpCode {
	if len(c.ins) == 0 {
		return OpInvalid
	}
	return c.ins[0].Op
}

// At returns the i-th instruction of the view.
func (c Cursor) At(i int) (Instruction, bool) {
	if i < 0 || i >= len(c.ins) {
		return Instruction{}, false
	}
	return c.ins[i], true
}

// Slice returns the sub-view [off:off+n].
func (c Cursor) Slice(off, n int) (Cursor, bool) {
	if off < 0 || n < 0 || off > len(c.ins) || n > len(c.ins)-off {
		return Cursor{}, false
	}
	return Cursor{ins: c.ins[off : off+n]}, true
}

// Advance returns the view with the first n instructions dropped.
func (c Cursor) Advance(n int) (Cursor, bool) {
	if n < 0 || n > len(c.ins) {
		return Cursor{}, false
	}
	return Cursor{ins: c.ins[n:]}, true
}

// Instructions returns the remaining instructions as a slice view. The
// slice aliases the backing stream and must not be modified.
func (c Cursor) Instructions() []Instruction { return c.ins }
