package cpu

//	NOP
//	HALT
//	STOP
//	DI
//	EI
func (c *CPU) misc(m Misc) error {
	switch m.Op {
	case OpNOP:
	case OpHALT:
		c.halted = true
	case OpSTOP:
		c.lowPower = true
	case OpDI:
		c.ime = false
	case OpEI:
		c.ime = true
	default:
		return illegal(m)
	}
	return nil
}
