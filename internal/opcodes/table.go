// Package opcodes holds the fixed LR35902 opcode tables: one entry for every
// unprefixed byte and one for every CB-prefixed byte. The tables are built
// once at start-up and never modified afterwards.
package opcodes

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode is returned when a byte belongs to the set of opcodes
// the hardware leaves undefined.
var ErrIllegalOpcode = errors.New("illegal opcode")

// PrefixByte is the opcode that selects the CB-prefixed table.
const PrefixByte uint8 = 0xCB

// Opcode describes a single entry of the opcode table.
type Opcode struct {
	Code     uint8
	Prefixed bool
	Mnemonic Mnemonic
	// Name is the assembler form, e.g. "LD B, n8".
	Name string
	// Length is the encoded length in bytes, including the prefix.
	Length uint8
	// Cycles is the number of machine cycles taken, for conditional
	// instructions when the branch is taken.
	Cycles uint8
	// CyclesNotTaken is the number of machine cycles taken by a
	// conditional instruction when the branch is not taken. It is zero
	// for unconditional instructions.
	CyclesNotTaken uint8
}

func (o Opcode) String() string {
	if o.Prefixed {
		return fmt.Sprintf("CB %02X %s", o.Code, o.Name)
	}
	return fmt.Sprintf("%02X %s", o.Code, o.Name)
}

// Illegal reports whether the opcode is one of the undefined values.
func (o Opcode) Illegal() bool {
	return o.Mnemonic == Illegal
}

func op(m Mnemonic, name string, length, cycles uint8) Opcode {
	return Opcode{Mnemonic: m, Name: name, Length: length, Cycles: cycles}
}

func cond(m Mnemonic, name string, length, taken, notTaken uint8) Opcode {
	return Opcode{Mnemonic: m, Name: name, Length: length, Cycles: taken, CyclesNotTaken: notTaken}
}

var illegal = op(Illegal, "ILLEGAL", 1, 1)

// unprefixed is the table of single-byte opcodes. 0x40 - 0xBF follow a
// regular pattern and are filled in by init.
var unprefixed = [256]Opcode{
	0x00: op(Nop, "NOP", 1, 1),
	0x01: op(Ld, "LD BC, n16", 3, 3),
	0x02: op(Ld, "LD (BC), A", 1, 2),
	0x03: op(Inc, "INC BC", 1, 2),
	0x04: op(Inc, "INC B", 1, 1),
	0x05: op(Dec, "DEC B", 1, 1),
	0x06: op(Ld, "LD B, n8", 2, 2),
	0x07: op(Rlca, "RLCA", 1, 1),
	0x08: op(Ld, "LD (a16), SP", 3, 5),
	0x09: op(Add, "ADD HL, BC", 1, 2),
	0x0A: op(Ld, "LD A, (BC)", 1, 2),
	0x0B: op(Dec, "DEC BC", 1, 2),
	0x0C: op(Inc, "INC C", 1, 1),
	0x0D: op(Dec, "DEC C", 1, 1),
	0x0E: op(Ld, "LD C, n8", 2, 2),
	0x0F: op(Rrca, "RRCA", 1, 1),

	0x10: op(Stop, "STOP n8", 2, 1),
	0x11: op(Ld, "LD DE, n16", 3, 3),
	0x12: op(Ld, "LD (DE), A", 1, 2),
	0x13: op(Inc, "INC DE", 1, 2),
	0x14: op(Inc, "INC D", 1, 1),
	0x15: op(Dec, "DEC D", 1, 1),
	0x16: op(Ld, "LD D, n8", 2, 2),
	0x17: op(Rla, "RLA", 1, 1),
	0x18: op(Jr, "JR e8", 2, 3),
	0x19: op(Add, "ADD HL, DE", 1, 2),
	0x1A: op(Ld, "LD A, (DE)", 1, 2),
	0x1B: op(Dec, "DEC DE", 1, 2),
	0x1C: op(Inc, "INC E", 1, 1),
	0x1D: op(Dec, "DEC E", 1, 1),
	0x1E: op(Ld, "LD E, n8", 2, 2),
	0x1F: op(Rra, "RRA", 1, 1),

	0x20: cond(Jr, "JR NZ, e8", 2, 3, 2),
	0x21: op(Ld, "LD HL, n16", 3, 3),
	0x22: op(Ld, "LD (HL+), A", 1, 2),
	0x23: op(Inc, "INC HL", 1, 2),
	0x24: op(Inc, "INC H", 1, 1),
	0x25: op(Dec, "DEC H", 1, 1),
	0x26: op(Ld, "LD H, n8", 2, 2),
	0x27: op(Daa, "DAA", 1, 1),
	0x28: cond(Jr, "JR Z, e8", 2, 3, 2),
	0x29: op(Add, "ADD HL, HL", 1, 2),
	0x2A: op(Ld, "LD A, (HL+)", 1, 2),
	0x2B: op(Dec, "DEC HL", 1, 2),
	0x2C: op(Inc, "INC L", 1, 1),
	0x2D: op(Dec, "DEC L", 1, 1),
	0x2E: op(Ld, "LD L, n8", 2, 2),
	0x2F: op(Cpl, "CPL", 1, 1),

	0x30: cond(Jr, "JR NC, e8", 2, 3, 2),
	0x31: op(Ld, "LD SP, n16", 3, 3),
	0x32: op(Ld, "LD (HL-), A", 1, 2),
	0x33: op(Inc, "INC SP", 1, 2),
	0x34: op(Inc, "INC (HL)", 1, 3),
	0x35: op(Dec, "DEC (HL)", 1, 3),
	0x36: op(Ld, "LD (HL), n8", 2, 3),
	0x37: op(Scf, "SCF", 1, 1),
	0x38: cond(Jr, "JR C, e8", 2, 3, 2),
	0x39: op(Add, "ADD HL, SP", 1, 2),
	0x3A: op(Ld, "LD A, (HL-)", 1, 2),
	0x3B: op(Dec, "DEC SP", 1, 2),
	0x3C: op(Inc, "INC A", 1, 1),
	0x3D: op(Dec, "DEC A", 1, 1),
	0x3E: op(Ld, "LD A, n8", 2, 2),
	0x3F: op(Ccf, "CCF", 1, 1),

	0xC0: cond(Ret, "RET NZ", 1, 5, 2),
	0xC1: op(Pop, "POP BC", 1, 3),
	0xC2: cond(Jp, "JP NZ, a16", 3, 4, 3),
	0xC3: op(Jp, "JP a16", 3, 4),
	0xC4: cond(Call, "CALL NZ, a16", 3, 6, 3),
	0xC5: op(Push, "PUSH BC", 1, 4),
	0xC6: op(Add, "ADD A, n8", 2, 2),
	0xC7: op(Rst, "RST $00", 1, 4),
	0xC8: cond(Ret, "RET Z", 1, 5, 2),
	0xC9: op(Ret, "RET", 1, 4),
	0xCA: cond(Jp, "JP Z, a16", 3, 4, 3),
	0xCB: op(Prefix, "PREFIX", 1, 1),
	0xCC: cond(Call, "CALL Z, a16", 3, 6, 3),
	0xCD: op(Call, "CALL a16", 3, 6),
	0xCE: op(Adc, "ADC A, n8", 2, 2),
	0xCF: op(Rst, "RST $08", 1, 4),

	0xD0: cond(Ret, "RET NC", 1, 5, 2),
	0xD1: op(Pop, "POP DE", 1, 3),
	0xD2: cond(Jp, "JP NC, a16", 3, 4, 3),
	0xD3: illegal,
	0xD4: cond(Call, "CALL NC, a16", 3, 6, 3),
	0xD5: op(Push, "PUSH DE", 1, 4),
	0xD6: op(Sub, "SUB A, n8", 2, 2),
	0xD7: op(Rst, "RST $10", 1, 4),
	0xD8: cond(Ret, "RET C", 1, 5, 2),
	0xD9: op(Reti, "RETI", 1, 4),
	0xDA: cond(Jp, "JP C, a16", 3, 4, 3),
	0xDB: illegal,
	0xDC: cond(Call, "CALL C, a16", 3, 6, 3),
	0xDD: illegal,
	0xDE: op(Sbc, "SBC A, n8", 2, 2),
	0xDF: op(Rst, "RST $18", 1, 4),

	0xE0: op(Ldh, "LDH (a8), A", 2, 3),
	0xE1: op(Pop, "POP HL", 1, 3),
	0xE2: op(Ldh, "LD (C), A", 1, 2),
	0xE3: illegal,
	0xE4: illegal,
	0xE5: op(Push, "PUSH HL", 1, 4),
	0xE6: op(And, "AND A, n8", 2, 2),
	0xE7: op(Rst, "RST $20", 1, 4),
	0xE8: op(Add, "ADD SP, e8", 2, 4),
	0xE9: op(Jp, "JP HL", 1, 1),
	0xEA: op(Ld, "LD (a16), A", 3, 4),
	0xEB: illegal,
	0xEC: illegal,
	0xED: illegal,
	0xEE: op(Xor, "XOR A, n8", 2, 2),
	0xEF: op(Rst, "RST $28", 1, 4),

	0xF0: op(Ldh, "LDH A, (a8)", 2, 3),
	0xF1: op(Pop, "POP AF", 1, 3),
	0xF2: op(Ldh, "LD A, (C)", 1, 2),
	0xF3: op(Di, "DI", 1, 1),
	0xF4: illegal,
	0xF5: op(Push, "PUSH AF", 1, 4),
	0xF6: op(Or, "OR A, n8", 2, 2),
	0xF7: op(Rst, "RST $30", 1, 4),
	0xF8: op(Ld, "LD HL, SP+e8", 2, 3),
	0xF9: op(Ld, "LD SP, HL", 1, 2),
	0xFA: op(Ld, "LD A, (a16)", 3, 4),
	0xFB: op(Ei, "EI", 1, 1),
	0xFC: illegal,
	0xFD: illegal,
	0xFE: op(Cp, "CP A, n8", 2, 2),
	0xFF: op(Rst, "RST $38", 1, 4),
}

var prefixed [256]Opcode

// registerNames are the operand names selected by a 3-bit register field.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var (
	aluMnemonics = [8]Mnemonic{Add, Adc, Sub, Sbc, And, Xor, Or, Cp}
	cbMnemonics  = [8]Mnemonic{Rlc, Rrc, Rl, Rr, Sla, Sra, Swap, Srl}
)

func init() {
	// 0x40 - 0x7F LD r, r' (0x76 HALT)
	for i := 0x40; i < 0x80; i++ {
		dst, src := (i>>3)&7, i&7
		cycles := uint8(1)
		if dst == 6 || src == 6 {
			cycles = 2
		}
		unprefixed[i] = op(Ld, "LD "+registerNames[dst]+", "+registerNames[src], 1, cycles)
	}
	unprefixed[0x76] = op(Halt, "HALT", 1, 1)

	// 0x80 - 0xBF ALU A, r
	for i := 0x80; i < 0xC0; i++ {
		m, src := aluMnemonics[(i>>3)&7], i&7
		cycles := uint8(1)
		if src == 6 {
			cycles = 2
		}
		unprefixed[i] = op(m, m.String()+" A, "+registerNames[src], 1, cycles)
	}

	// CB 0x00 - 0xFF
	for i := 0; i < 256; i++ {
		y, r := (i>>3)&7, i&7
		var o Opcode
		switch i >> 6 {
		case 0:
			o = op(cbMnemonics[y], cbMnemonics[y].String()+" "+registerNames[r], 2, 2)
		case 1:
			o = op(Bit, fmt.Sprintf("BIT %d, %s", y, registerNames[r]), 2, 2)
		case 2:
			o = op(Res, fmt.Sprintf("RES %d, %s", y, registerNames[r]), 2, 2)
		case 3:
			o = op(Set, fmt.Sprintf("SET %d, %s", y, registerNames[r]), 2, 2)
		}
		if r == 6 {
			// (HL) costs a read, and a write for everything but BIT
			if o.Mnemonic == Bit {
				o.Cycles = 3
			} else {
				o.Cycles = 4
			}
		}
		o.Prefixed = true
		prefixed[i] = o
	}

	for i := range unprefixed {
		unprefixed[i].Code = uint8(i)
		prefixed[i].Code = uint8(i)
	}
}

// Lookup returns the mnemonic of an unprefixed opcode byte.
func Lookup(b uint8) Mnemonic {
	return unprefixed[b].Mnemonic
}

// LookupPrefixed returns the mnemonic of a CB-prefixed opcode byte.
func LookupPrefixed(b uint8) Mnemonic {
	return prefixed[b].Mnemonic
}

// Get returns the full table entry of an unprefixed opcode byte,
// including the illegal ones.
func Get(b uint8) Opcode {
	return unprefixed[b]
}

// GetPrefixed returns the full table entry of a CB-prefixed opcode byte.
func GetPrefixed(b uint8) Opcode {
	return prefixed[b]
}

// Decode resolves an unprefixed opcode byte, returning ErrIllegalOpcode
// for the 11 undefined values.
func Decode(b uint8) (Opcode, error) {
	o := unprefixed[b]
	if o.Illegal() {
		return o, fmt.Errorf("%w: 0x%02X", ErrIllegalOpcode, b)
	}
	return o, nil
}

// DecodePrefixed resolves a CB-prefixed opcode byte. Every value is legal.
func DecodePrefixed(b uint8) Opcode {
	return prefixed[b]
}
