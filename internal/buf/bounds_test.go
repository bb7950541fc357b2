package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if v, ok := MulOverflowSafe(64, 1024); !ok || v != 65536 {
		t.Fatalf("MulOverflowSafe(64,1024)=%d,%v want 65536,true", v, ok)
	}
	if v, ok := MulOverflowSafe(0, math.MaxInt); !ok || v != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", v, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow for MaxInt*2")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
}

func TestCheckListBounds(t *testing.T) {
	end, err := CheckListBounds(1024, 4, 15, 64)
	if err != nil || end != 964 {
		t.Fatalf("CheckListBounds=%d,%v want 964,nil", end, err)
	}
	if _, err := CheckListBounds(100, 4, 2, 64); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
	if _, err := CheckListBounds(100, 4, -1, 64); err == nil {
		t.Fatalf("expected negative count error")
	}
	if _, err := CheckListBounds(100, 4, math.MaxInt, 64); err == nil {
		t.Fatalf("expected overflow error")
	}
}
