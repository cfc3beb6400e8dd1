package cpu

// pushStack pushes a 16-bit value onto the stack. SP is decremented
// before the write.
func (c *CPU) pushStack(value uint16) {
	c.RegisterFile.SP -= 2
	c.bus.WriteWord(c.RegisterFile.SP, value)
}

// popStack pops a 16-bit value off the stack. SP is incremented after
// the read.
func (c *CPU) popStack() uint16 {
	v := c.bus.ReadWord(c.RegisterFile.SP)
	c.RegisterFile.SP += 2
	return v
}

//	PUSH nn
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) stack(s Stack) error {
	if s.Pair == PairSP || s.Pair > PairAF {
		return illegal(s)
	}
	switch s.Op {
	case OpPush:
		c.pushStack(c.Pair(s.Pair))
	case OpPop:
		c.SetPair(s.Pair, c.popStack())
	default:
		return illegal(s)
	}
	return nil
}
