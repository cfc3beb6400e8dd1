package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flag returns true if the given flag is set.
func (r *RegisterFile) Flag(flag Flag) bool {
	return bits.Test(r.F, flag)
}

// setFlag sets a flag in the F register.
func (r *RegisterFile) setFlag(flag Flag) {
	r.F = bits.Set(r.F, flag)
}

// clearFlag clears a flag from the F register.
func (r *RegisterFile) clearFlag(flag Flag) {
	r.F = bits.Reset(r.F, flag)
}

// isFlagSet returns true if the given flag is set.
func (r *RegisterFile) isFlagSet(flag Flag) bool {
	return r.Flag(flag)
}

func (r *RegisterFile) putFlag(flag Flag, set bool) {
	if set {
		r.setFlag(flag)
	} else {
		r.clearFlag(flag)
	}
}

// setFlags overwrites all four flags at once.
func (r *RegisterFile) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	r.putFlag(FlagZero, zero)
	r.putFlag(FlagSubtract, subtract)
	r.putFlag(FlagHalfCarry, halfCarry)
	r.putFlag(FlagCarry, carry)
}

// carryBit returns the carry flag as 0 or 1.
func (r *RegisterFile) carryBit() uint8 {
	if r.isFlagSet(FlagCarry) {
		return 1
	}
	return 0
}
