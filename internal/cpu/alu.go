package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// read8 returns the value of an 8-bit register, or the byte at (HL).
func (c *CPU) read8(t Target) uint8 {
	if t == TargetHL {
		return c.bus.ReadByte(c.HL())
	}
	return *c.register(t)
}

// write8 writes an 8-bit register, or the byte at (HL).
func (c *CPU) write8(t Target, v uint8) {
	if t == TargetHL {
		c.bus.WriteByte(c.HL(), v)
		return
	}
	*c.register(t) = v
}

func (c *CPU) alu(i ALU) error {
	if !i.Src.valid() || i.Op > OpCp {
		return illegal(i)
	}
	c.apply(i.Op, c.read8(i.Src))
	return nil
}

func (c *CPU) aluImmediate(i ALUImmediate) error {
	if i.Op > OpCp {
		return illegal(i)
	}
	c.apply(i.Op, i.Value)
	return nil
}

func (c *CPU) apply(op ALUOp, v uint8) {
	switch op {
	case OpAdd:
		c.add(v, false)
	case OpAdc:
		c.add(v, true)
	case OpSub:
		c.A = c.sub(v, false)
	case OpSbc:
		c.A = c.sub(v, true)
	case OpAnd:
		c.A &= v
		c.setFlags(c.A == 0, false, true, false)
	case OpXor:
		c.A ^= v
		c.setFlags(c.A == 0, false, false, false)
	case OpOr:
		c.A |= v
		c.setFlags(c.A == 0, false, false, false)
	case OpCp:
		c.sub(v, false)
	}
}

// add adds v, and the carry flag when withCarry is set, to A.
//
//	ADD A, n
//	ADC A, n
//	Flags: Z 0 H C
func (c *CPU) add(v uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	sum := uint16(c.A) + uint16(v) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, (c.A&0x0F)+(v&0x0F)+carry > 0x0F, sum > 0xFF)
	c.A = uint8(sum)
}

// sub returns A minus v, and the carry flag when withCarry is set. A is
// left untouched so that CP can share it.
//
//	SUB A, n
//	SBC A, n
//	CP A, n
//	Flags: Z 1 H C
func (c *CPU) sub(v uint8, withCarry bool) uint8 {
	var carry uint8
	if withCarry {
		carry = c.carryBit()
	}
	diff := int16(c.A) - int16(v) - int16(carry)
	half := int16(c.A&0x0F) - int16(v&0x0F) - int16(carry)
	c.setFlags(uint8(diff) == 0, true, half < 0, diff < 0)
	return uint8(diff)
}

// incDec increments or decrements an 8-bit register or (HL).
//
//	INC n
//	DEC n
//	Flags: Z 0 H - (INC), Z 1 H - (DEC)
func (c *CPU) incDec(i IncDec) error {
	if !i.Target.valid() {
		return illegal(i)
	}
	v := Byte(c.read8(i.Target))
	var r Value
	if i.Dec {
		r, _ = v.Dec()
		c.putFlag(FlagHalfCarry, v.Byte()&0x0F == 0)
	} else {
		r, _ = v.Inc()
		c.putFlag(FlagHalfCarry, v.Byte()&0x0F == 0x0F)
	}
	c.putFlag(FlagZero, r.IsZero())
	c.putFlag(FlagSubtract, i.Dec)
	c.write8(i.Target, r.Byte())
	return nil
}

//	INC nn
//	DEC nn
//	Flags: - - - -
func (c *CPU) incDec16(i IncDec16) error {
	if i.Pair > PairSP {
		return illegal(i)
	}
	v := Word(c.Pair(i.Pair))
	if i.Dec {
		v, _ = v.Dec()
	} else {
		v, _ = v.Inc()
	}
	c.SetPair(i.Pair, v.Word())
	return nil
}

// addHL adds a register pair to HL.
//
//	ADD HL, nn
//	Flags: - 0 H C
func (c *CPU) addHL(i AddHL) error {
	if i.Src > PairSP {
		return illegal(i)
	}
	hl, v := c.HL(), c.Pair(i.Src)
	sum := uint32(hl) + uint32(v)
	c.putFlag(FlagSubtract, false)
	c.putFlag(FlagHalfCarry, (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF)
	c.putFlag(FlagCarry, sum > 0xFFFF)
	c.SetHL(uint16(sum))
	return nil
}

// addSPSigned returns SP plus a signed offset, with the half carry and
// carry flags taken from the unsigned addition of the low byte.
//
//	ADD SP, e
//	LD HL, SP+e
//	Flags: 0 0 H C
func (c *CPU) addSPSigned(offset int8) uint16 {
	sp := c.RegisterFile.SP
	v := uint16(int16(offset))
	c.setFlags(false, false, (sp&0x0F)+(v&0x0F) > 0x0F, (sp&0xFF)+(v&0xFF) > 0xFF)
	return sp + v
}

func (c *CPU) accumulator(i Accumulator) error {
	switch i.Op {
	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		var carry bool
		c.A, carry = c.shift(CBOp(i.Op), c.A)
		c.setFlags(false, false, false, carry)
	case OpDAA:
		c.daa()
	case OpCPL:
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case OpSCF:
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.setFlag(FlagCarry)
	case OpCCF:
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.putFlag(FlagCarry, !c.isFlagSet(FlagCarry))
	default:
		return illegal(i)
	}
	return nil
}

// daa adjusts A to a binary coded decimal after an addition or
// subtraction of two BCD values.
//
//	DAA
//	Flags: Z - 0 C
func (c *CPU) daa() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&types.LowNibble > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.A = a
	c.putFlag(FlagZero, a == 0)
	c.clearFlag(FlagHalfCarry)
	c.putFlag(FlagCarry, carry)
}
