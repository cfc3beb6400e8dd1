package cpu

// holds evaluates the predicate of a conditional instruction.
func (c *CPU) holds(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	case CondC:
		return c.isFlagSet(FlagCarry)
	}
	return true
}

func (j Jump) valid() bool {
	if j.Cond > CondAlways {
		return false
	}
	switch j.Kind {
	case JumpJP, JumpJR, JumpCall, JumpRet:
		return true
	case JumpJPHL, JumpRetI:
		return j.Cond == CondAlways
	case JumpRst:
		return j.Cond == CondAlways && j.Address&^0x38 == 0
	}
	return false
}

// jump executes a control flow instruction. When the condition does not
// hold, it does nothing.
//
//	JP cc, nn
//	JP HL
//	JR cc, e
//	CALL cc, nn
//	RET cc
//	RETI
//	RST n
func (c *CPU) jump(j Jump) error {
	if !j.valid() {
		return illegal(j)
	}
	if !c.holds(j.Cond) {
		return nil
	}
	c.branched = true

	r := &c.RegisterFile
	switch j.Kind {
	case JumpJP:
		r.PC = j.Address
	case JumpJPHL:
		r.PC = r.HL()
	case JumpJR:
		r.PC += uint16(int16(j.Offset))
	case JumpCall, JumpRst:
		c.pushStack(r.PC)
		r.PC = j.Address
	case JumpRet:
		r.PC = c.popStack()
	case JumpRetI:
		r.PC = c.popStack()
		c.ime = true
	}
	return nil
}
