package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This is essential for count * recordSize calculations
// in table parsing.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, false
	}
	if a > 0 && b < 0 && b < math.MinInt/a {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckListBounds validates that count records of recordSize bytes fit in a
// buffer of bufLen bytes starting at offset. Returns the end offset if valid,
// or an error describing the specific failure (overflow or out of bounds).
//
//	endOff, err := buf.CheckListBounds(len(data), offset, int(count), recordSize)
//	if err != nil {
//	    return fmt.Errorf("entity table: %w", err)
//	}
//	// Safe to iterate from offset to endOff
func CheckListBounds(bufLen, offset, count, recordSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if recordSize < 0 {
		return 0, fmt.Errorf("negative record size: %d", recordSize)
	}

	totalSize, ok := MulOverflowSafe(count, recordSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * recordSize=%d", count, recordSize)
	}

	endOffset, ok := AddOverflowSafe(offset, totalSize)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, totalSize)
	}

	if endOffset > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", endOffset, bufLen)
	}

	return endOffset, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
