package cpu

import "fmt"

// Value is a byte or a word moving between a load's source and its
// destination.
type Value struct {
	v    uint16
	word bool
}

// Byte returns an 8-bit Value.
func Byte(v uint8) Value { return Value{v: uint16(v)} }

// Word returns a 16-bit Value.
func Word(v uint16) Value { return Value{v: v, word: true} }

// Width returns WidthByte or WidthWord.
func (v Value) Width() Width {
	if v.word {
		return WidthWord
	}
	return WidthByte
}

// Byte returns the low 8 bits of the value.
func (v Value) Byte() uint8 { return uint8(v.v) }

// Word returns the value widened to 16 bits.
func (v Value) Word() uint16 { return v.v }

// IsZero reports whether the value is zero.
func (v Value) IsZero() bool { return v.v == 0 }

// Inc returns v+1, wrapping at the value's width, and whether it
// overflowed.
func (v Value) Inc() (Value, bool) {
	if v.word {
		return Word(v.v + 1), v.v == 0xFFFF
	}
	return Byte(uint8(v.v) + 1), uint8(v.v) == 0xFF
}

// Dec returns v-1, wrapping at the value's width, and whether it
// underflowed.
func (v Value) Dec() (Value, bool) {
	if v.word {
		return Word(v.v - 1), v.v == 0
	}
	return Byte(uint8(v.v) - 1), v.v == 0
}

func (v Value) String() string {
	if v.word {
		return fmt.Sprintf("$%04X", v.v)
	}
	return fmt.Sprintf("$%02X", v.v)
}
