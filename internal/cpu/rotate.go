package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// shift rotates or shifts v by one bit, returning the result and the bit
// shifted out, which becomes the new carry.
func (c *CPU) shift(op CBOp, v uint8) (uint8, bool) {
	switch op {
	case OpRLC:
		return v<<1 | v>>7, v&types.Bit7 != 0
	case OpRRC:
		return v>>1 | v<<7, v&types.Bit0 != 0
	case OpRL:
		return v<<1 | c.carryBit(), v&types.Bit7 != 0
	case OpRR:
		return v>>1 | c.carryBit()<<7, v&types.Bit0 != 0
	case OpSLA:
		return v << 1, v&types.Bit7 != 0
	case OpSRA:
		return v>>1 | v&types.Bit7, v&types.Bit0 != 0
	case OpSWAP:
		return bits.Swap(v), false
	}
	// OpSRL
	return v >> 1, v&types.Bit0 != 0
}

// prefixed executes an instruction from the CB prefixed space.
//
//	RLC n, RRC n, RL n, RR n, SLA n, SRA n, SWAP n, SRL n
//	Flags: Z 0 0 C
//	BIT b, n
//	Flags: Z 0 1 -
//	RES b, n
//	SET b, n
//	Flags: - - - -
func (c *CPU) prefixed(i Prefixed) error {
	if !i.Target.valid() || i.Bit > 7 {
		return illegal(i)
	}

	switch i.Op {
	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		if i.Bit != 0 {
			return illegal(i)
		}
		r, carry := c.shift(i.Op, c.read8(i.Target))
		c.setFlags(r == 0, false, false, carry)
		c.write8(i.Target, r)
	case OpBIT:
		c.putFlag(FlagZero, !bits.Test(c.read8(i.Target), i.Bit))
		c.clearFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case OpRES:
		c.write8(i.Target, bits.Reset(c.read8(i.Target), i.Bit))
	case OpSET:
		c.write8(i.Target, bits.Set(c.read8(i.Target), i.Bit))
	default:
		return illegal(i)
	}
	return nil
}
