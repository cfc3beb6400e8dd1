package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// load moves a value from the source location to the destination. A
// memory location takes the width of the other side, so LD (a16), SP
// writes a word while LD (a16), A writes a byte.
//
//	LD d, s
//	Flags: - - - -
func (c *CPU) load(i Load) error {
	if !i.Dst.valid() || !i.Src.valid() || i.Dst.immediate() {
		return illegal(i)
	}

	width := i.Dst.Width()
	switch src := i.Src.Width(); {
	case width == WidthAny && src == WidthAny:
		return illegal(i)
	case width == WidthAny:
		width = src
	case src != WidthAny && src != width:
		return illegal(i)
	}

	c.store(i.Dst, c.fetchLocation(i.Src, width))
	return nil
}

// address resolves a memory location, applying HL+/HL- afterwards.
func (c *CPU) address(l Location) uint16 {
	switch l.Kind {
	case LocIndirect:
		return c.Pair(l.Pair)
	case LocHLInc:
		hl := c.HL()
		c.SetHL(hl + 1)
		return hl
	case LocHLDec:
		hl := c.HL()
		c.SetHL(hl - 1)
		return hl
	case LocAbsolute:
		return l.Value
	case LocHigh:
		return types.IOPage + l.Value
	}
	// LocHighC
	return types.IOPage + uint16(c.RegisterFile.C)
}

func (c *CPU) fetchLocation(l Location, width Width) Value {
	switch l.Kind {
	case LocRegister:
		return Byte(*c.register(l.Target))
	case LocPair:
		return Word(c.Pair(l.Pair))
	case LocImmediate8:
		return Byte(uint8(l.Value))
	case LocImmediate16:
		return Word(l.Value)
	}
	address := c.address(l)
	if width == WidthWord {
		return Word(c.bus.ReadWord(address))
	}
	return Byte(c.bus.ReadByte(address))
}

func (c *CPU) store(l Location, v Value) {
	switch l.Kind {
	case LocRegister:
		*c.register(l.Target) = v.Byte()
		return
	case LocPair:
		c.SetPair(l.Pair, v.Word())
		return
	}
	address := c.address(l)
	if v.Width() == WidthWord {
		c.bus.WriteWord(address, v.Word())
		return
	}
	c.bus.WriteByte(address, v.Byte())
}
