package types

import (
	"errors"
	"testing"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0xBEEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	r := StateFromBytes(s.Bytes())
	if v := r.Read8(); v != 0x12 {
		t.Errorf("expected 0x12, got 0x%02X", v)
	}
	if v := r.Read16(); v != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", v)
	}
	if !r.ReadBool() {
		t.Errorf("expected true, got false")
	}
	p := make([]byte, 3)
	r.ReadData(p)
	if p[0] != 1 || p[1] != 2 || p[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", p)
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}

	t.Run("short", func(t *testing.T) {
		r.Read16()
		if !errors.Is(r.Err(), ErrShortState) {
			t.Errorf("expected ErrShortState, got %v", r.Err())
		}
	})
}

func TestRegisterPair(t *testing.T) {
	var h, l Register
	p := Pair(&h, &l)
	p.SetUint16(0x1234)
	if h != 0x12 || l != 0x34 {
		t.Errorf("expected 12/34, got %02X/%02X", h, l)
	}
	if p.Uint16() != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", p.Uint16())
	}
}
