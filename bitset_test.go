package tuber

import "testing"

func TestBitSetSetAndGet(t *testing.T) {
	b := NewBitSet(128)
	b.Set(0)
	b.Set(2)
	if !b.Bit(0) || !b.Bit(2) {
		t.Error("expected bits 0 and 2 to be set")
	}
	if b.Bit(1) {
		t.Error("expected bit 1 to be unset")
	}
}

func TestBitSetWordBoundary(t *testing.T) {
	b := NewBitSet(128)
	b.Set(64)
	b.Set(66)
	if b[1] != 0b101 {
		t.Errorf("expected second word to be 0b101, got %b", b[1])
	}
	if !b.Bit(64) || !b.Bit(66) {
		t.Error("expected bits 64 and 66 to be set")
	}
	if b.Bit(65) {
		t.Error("expected bit 65 to be unset")
	}
}

func TestBitSetUnset(t *testing.T) {
	b := NewBitSet(64)
	b.Set(5)
	b.Unset(5)
	if b.Bit(5) {
		t.Error("expected bit 5 to be unset after Unset")
	}
}

func TestBitSetBitCount(t *testing.T) {
	if got := NewBitSet(1).BitCount(); got != 64 {
		t.Errorf("expected one-word set to report 64 bits, got %d", got)
	}
	if got := NewBitSet(65536).BitCount(); got != 65536 {
		t.Errorf("expected 65536 bits, got %d", got)
	}
	if got := NewBitSet(100).BitCount(); got != 128 {
		t.Errorf("expected capacity rounded up to 128 bits, got %d", got)
	}
}

func TestBitSetIntersect(t *testing.T) {
	a := NewBitSet(128)
	b := NewBitSet(128)
	a.Set(1)
	a.Set(70)
	a.Set(100)
	b.Set(70)
	b.Set(100)
	b.Set(127)
	a.intersect(b)
	if a.Bit(1) || a.Bit(127) {
		t.Error("intersection kept a bit present in only one set")
	}
	if !a.Bit(70) || !a.Bit(100) {
		t.Error("intersection dropped a bit present in both sets")
	}
}
