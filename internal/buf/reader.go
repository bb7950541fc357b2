package buf

import (
	"bytes"
	"fmt"

	"github.com/reglacier/gmskit/pkg/types"
)

// Reader is a forward cursor over a byte slice. Every read is bounds
// checked; a read past the end fails with an error wrapping
// types.ErrTruncated that carries the failing offset. The reader never
// copies: Bytes and CStringAt return views into the backing slice.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Len returns the total length of the backing slice.
func (r *Reader) Len() int { return len(r.data) }

func (r *Reader) need(n int) error {
	if n < 0 || !Has(r.data, r.off, n) {
		return fmt.Errorf("%w: need %d byte(s) at offset 0x%X, have %d",
			types.ErrTruncated, n, r.off, len(r.data)-r.off)
	}
	return nil
}

// Bytes consumes and returns the next n bytes as a view into the buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// Seek moves the cursor to the absolute offset off.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("%w: seek to 0x%X in %d byte(s)",
			types.ErrTruncated, off, len(r.data))
	}
	r.off = off
	return nil
}

// U8 consumes one byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 consumes a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return U16LE(b), nil
}

// U32 consumes a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}

// I32 consumes a little-endian int32.
func (r *Reader) I32() (int32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return I32LE(b), nil
}

// F32 consumes a little-endian float32.
func (r *Reader) F32() (float32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return F32LE(b), nil
}

// F64 consumes a little-endian float64.
func (r *Reader) F64() (float64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return F64LE(b), nil
}

// CStringAt returns the zero-terminated byte string starting at the
// absolute offset off, without the terminator and without moving the
// cursor. A missing terminator is a truncation error.
func (r *Reader) CStringAt(off int) ([]byte, error) {
	if off < 0 || off > len(r.data) {
		return nil, fmt.Errorf("%w: string offset 0x%X in %d byte(s)",
			types.ErrTruncated, off, len(r.data))
	}
	rel := bytes.IndexByte(r.data[off:], 0)
	if rel < 0 {
		return nil, fmt.Errorf("%w: unterminated string at offset 0x%X",
			types.ErrTruncated, off)
	}
	return r.data[off : off+rel], nil
}
