package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// RegisterFile contains the 8-bit registers of the CPU, along with the
// stack pointer and program counter. The 8-bit registers may be accessed
// in pairs (AF, BC, DE and HL) as a single 16-bit value.
//
// The zero value is a valid, zeroed register file.
type RegisterFile struct {
	A, F types.Register
	B, C types.Register
	D, E types.Register
	H, L types.Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
}

func (r *RegisterFile) bc() types.RegisterPair { return types.Pair(&r.B, &r.C) }
func (r *RegisterFile) de() types.RegisterPair { return types.Pair(&r.D, &r.E) }
func (r *RegisterFile) hl() types.RegisterPair { return types.Pair(&r.H, &r.L) }

// AF returns the value of the AF register pair.
func (r *RegisterFile) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F&types.HighNibble) }

// BC returns the value of the BC register pair.
func (r *RegisterFile) BC() uint16 { return r.bc().Uint16() }

// DE returns the value of the DE register pair.
func (r *RegisterFile) DE() uint16 { return r.de().Uint16() }

// HL returns the value of the HL register pair.
func (r *RegisterFile) HL() uint16 { return r.hl().Uint16() }

// SetAF sets the AF register pair. The lower nibble of F can not be
// written and always reads as zero.
func (r *RegisterFile) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & types.HighNibble
}

// SetBC sets the BC register pair.
func (r *RegisterFile) SetBC(v uint16) { r.bc().SetUint16(v) }

// SetDE sets the DE register pair.
func (r *RegisterFile) SetDE(v uint16) { r.de().SetUint16(v) }

// SetHL sets the HL register pair.
func (r *RegisterFile) SetHL(v uint16) { r.hl().SetUint16(v) }

// Pair returns the value of the given register pair.
func (r *RegisterFile) Pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return r.BC()
	case PairDE:
		return r.DE()
	case PairHL:
		return r.HL()
	case PairSP:
		return r.SP
	case PairAF:
		return r.AF()
	}
	return 0
}

// SetPair sets the value of the given register pair.
func (r *RegisterFile) SetPair(p Pair, v uint16) {
	switch p {
	case PairBC:
		r.SetBC(v)
	case PairDE:
		r.SetDE(v)
	case PairHL:
		r.SetHL(v)
	case PairSP:
		r.SP = v
	case PairAF:
		r.SetAF(v)
	}
}

// register returns a pointer to the 8-bit register named by t, or nil
// for TargetHL, which names memory rather than a register.
func (r *RegisterFile) register(t Target) *types.Register {
	switch t {
	case TargetB:
		return &r.B
	case TargetC:
		return &r.C
	case TargetD:
		return &r.D
	case TargetE:
		return &r.E
	case TargetH:
		return &r.H
	case TargetL:
		return &r.L
	case TargetA:
		return &r.A
	}
	return nil
}

func (r RegisterFile) String() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X [%s]",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC, r.flagString())
}

func (r RegisterFile) flagString() string {
	s := []byte("----")
	for i, f := range []struct {
		flag Flag
		c    byte
	}{{FlagZero, 'Z'}, {FlagSubtract, 'N'}, {FlagHalfCarry, 'H'}, {FlagCarry, 'C'}} {
		if r.Flag(f.flag) {
			s[i] = f.c
		}
	}
	return string(s)
}
