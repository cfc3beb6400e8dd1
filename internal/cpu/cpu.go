// Package cpu implements the fetch, decode and execute cycle of the
// LR35902, the Sharp SM83 derived CPU of the Game Boy.
package cpu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// CPU represents the Gameboy CPU. It is responsible for decoding and
// executing instructions from the Bus it was created with, which it
// has exclusive use of.
//
// A CPU is not safe for concurrent use.
type CPU struct {
	RegisterFile

	bus Bus
	log log.Logger

	trace bool

	ime      bool
	halted   bool
	lowPower bool

	// branched is set by a jump whose condition held, so that Step can
	// report the cycles of the taken path.
	branched bool
}

// New creates a CPU bound to bus, with a zeroed register file.
func New(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step performs a single fetch, decode and execute cycle, returning the
// number of M-cycles the instruction took. While the CPU is halted or
// stopped, Step does nothing and reports a single idle cycle.
//
// An error is returned for an illegal opcode, or an instruction the CPU
// could not execute. The CPU does not recover from either; PC is left
// past the offending opcode.
func (c *CPU) Step() (uint8, error) {
	if c.halted || c.lowPower {
		return 1, nil
	}

	pc := c.RegisterFile.PC
	instr, op, err := decode(&c.RegisterFile, c.bus)
	if err != nil {
		c.log.Errorf("cpu: decode at $%04X: %v", pc, err)
		return 0, err
	}
	if c.trace {
		c.log.Debugf("$%04X  %-18s %s", pc, instr, c.RegisterFile)
	}

	c.branched = false
	if err := c.Execute(instr); err != nil {
		c.log.Errorf("cpu: execute %s at $%04X: %v", instr, pc, err)
		return 0, err
	}

	if op.CyclesNotTaken != 0 && !c.branched {
		return op.CyclesNotTaken, nil
	}
	return op.Cycles, nil
}

// Decode decodes the instruction at PC without executing it. PC is
// advanced past the instruction.
func (c *CPU) Decode() (Instruction, error) {
	return Decode(&c.RegisterFile, c.bus)
}

// Execute executes a decoded instruction.
func (c *CPU) Execute(instr Instruction) error {
	switch i := instr.(type) {
	case ALU:
		return c.alu(i)
	case ALUImmediate:
		return c.aluImmediate(i)
	case IncDec:
		return c.incDec(i)
	case IncDec16:
		return c.incDec16(i)
	case AddHL:
		return c.addHL(i)
	case AddSP:
		c.RegisterFile.SP = c.addSPSigned(i.Offset)
		return nil
	case LoadHLSP:
		c.SetHL(c.addSPSigned(i.Offset))
		return nil
	case Accumulator:
		return c.accumulator(i)
	case Prefixed:
		return c.prefixed(i)
	case Jump:
		return c.jump(i)
	case Load:
		return c.load(i)
	case Stack:
		return c.stack(i)
	case Misc:
		return c.misc(i)
	}
	return illegal(instr)
}

// Registers returns a copy of the register file.
func (c *CPU) Registers() RegisterFile { return c.RegisterFile }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.RegisterFile.PC }

// SP returns the stack pointer.
func (c *CPU) SP() uint16 { return c.RegisterFile.SP }

// Halted reports whether the CPU executed HALT and has not been resumed.
func (c *CPU) Halted() bool { return c.halted }

// LowPower reports whether the CPU executed STOP and has not been
// resumed.
func (c *CPU) LowPower() bool { return c.lowPower }

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool { return c.ime }

// SetIME sets the interrupt master enable flag, for drivers that deliver
// interrupts.
func (c *CPU) SetIME(enabled bool) { c.ime = enabled }

// Resume clears the halted and low-power states, so that Step executes
// instructions again.
func (c *CPU) Resume() {
	c.halted = false
	c.lowPower = false
}

// Reset zeroes the register file and control state. The bus is left
// untouched.
func (c *CPU) Reset() {
	c.RegisterFile = RegisterFile{}
	c.ime, c.halted, c.lowPower, c.branched = false, false, false, false
}

var _ types.Stater = (*CPU)(nil)

// Save saves the state of the CPU to the given state.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.RegisterFile.SP)
	s.Write16(c.RegisterFile.PC)
	s.WriteBool(c.ime)
	s.WriteBool(c.halted)
	s.WriteBool(c.lowPower)
}

// Load loads the state of the CPU from the given state.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & types.HighNibble
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.RegisterFile.SP = s.Read16()
	c.RegisterFile.PC = s.Read16()
	c.ime = s.ReadBool()
	c.halted = s.ReadBool()
	c.lowPower = s.ReadBool()
}

// Fingerprint returns a hash of the CPU's registers and control state.
// Two CPUs with equal fingerprints are, for all practical purposes, in
// the same state.
func (c *CPU) Fingerprint() uint64 {
	s := types.NewState()
	c.Save(s)
	return xxhash.Sum64(s.Bytes())
}
