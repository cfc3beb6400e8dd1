package types

// Register represents an 8-bit LR35902 register. The CPU has 8 of them:
// A, F, B, C, D, E, H and L. F holds the flags, and only its upper 4 bits
// are ever set.
type Register = uint8

// RegisterPair represents a pair of Registers which are accessed together
// as a single 16-bit value, high byte first. The pairs are AF, BC, DE and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Pair returns a RegisterPair backed by the given registers.
func Pair(high, low *Register) RegisterPair {
	return RegisterPair{High: high, Low: low}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}
