package cpu

import "fmt"

// Target is an 8-bit operand, encoded in 3 bits of an opcode. TargetHL
// addresses the byte in memory pointed to by HL.
type Target uint8

const (
	TargetB Target = iota
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	TargetHL
	TargetA
)

var targetNames = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (t Target) String() string {
	if t.valid() {
		return targetNames[t]
	}
	return fmt.Sprintf("Target(%d)", uint8(t))
}

func (t Target) valid() bool { return t <= TargetA }

// Pair is a 16-bit register operand.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var pairNames = [...]string{"BC", "DE", "HL", "SP", "AF"}

func (p Pair) String() string {
	if p <= PairAF {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Condition is the predicate of a conditional jump, call or return.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
	CondAlways
)

var conditionNames = [...]string{"NZ", "Z", "NC", "C", ""}

func (c Condition) String() string {
	if c <= CondAlways {
		return conditionNames[c]
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

// Width is the size of a value moved by a load.
type Width uint8

const (
	// WidthAny is the width of a memory location, which takes the width
	// of whatever is on the other side of the load.
	WidthAny Width = iota
	WidthByte
	WidthWord
)

// LocationKind selects how a Location is resolved.
type LocationKind uint8

const (
	LocRegister    LocationKind = iota // 8-bit register
	LocPair                            // 16-bit register
	LocIndirect                        // memory at (BC), (DE) or (HL)
	LocHLInc                           // memory at (HL), then HL++
	LocHLDec                           // memory at (HL), then HL--
	LocAbsolute                        // memory at a16
	LocHigh                            // memory at 0xFF00+a8
	LocHighC                           // memory at 0xFF00+C
	LocImmediate8                      // n8
	LocImmediate16                     // n16
)

// Location is the source or destination of a Load. Which of the fields
// are meaningful depends on Kind.
type Location struct {
	Kind   LocationKind
	Target Target
	Pair   Pair
	Value  uint16
}

// Reg returns the location of an 8-bit register. TargetHL resolves to
// the memory pointed to by HL.
func Reg(t Target) Location {
	if t == TargetHL {
		return Indirect(PairHL)
	}
	return Location{Kind: LocRegister, Target: t}
}

// Reg16 returns the location of a 16-bit register.
func Reg16(p Pair) Location { return Location{Kind: LocPair, Pair: p} }

// Indirect returns the memory location pointed to by p.
func Indirect(p Pair) Location { return Location{Kind: LocIndirect, Pair: p} }

// HLInc returns (HL+).
func HLInc() Location { return Location{Kind: LocHLInc, Pair: PairHL} }

// HLDec returns (HL-).
func HLDec() Location { return Location{Kind: LocHLDec, Pair: PairHL} }

// Absolute returns the memory location at address.
func Absolute(address uint16) Location { return Location{Kind: LocAbsolute, Value: address} }

// High returns the memory location at 0xFF00+offset.
func High(offset uint8) Location { return Location{Kind: LocHigh, Value: uint16(offset)} }

// HighC returns the memory location at 0xFF00+C.
func HighC() Location { return Location{Kind: LocHighC} }

// Imm8 returns an 8-bit immediate.
func Imm8(v uint8) Location { return Location{Kind: LocImmediate8, Value: uint16(v)} }

// Imm16 returns a 16-bit immediate.
func Imm16(v uint16) Location { return Location{Kind: LocImmediate16, Value: v} }

// Width returns the width of the location.
func (l Location) Width() Width {
	switch l.Kind {
	case LocRegister, LocImmediate8:
		return WidthByte
	case LocPair, LocImmediate16:
		return WidthWord
	}
	return WidthAny
}

func (l Location) immediate() bool {
	return l.Kind == LocImmediate8 || l.Kind == LocImmediate16
}

func (l Location) valid() bool {
	switch l.Kind {
	case LocRegister:
		return l.Target.valid() && l.Target != TargetHL
	case LocPair:
		return l.Pair <= PairSP
	case LocIndirect:
		return l.Pair <= PairHL
	}
	return l.Kind <= LocImmediate16
}

func (l Location) String() string {
	switch l.Kind {
	case LocRegister:
		return l.Target.String()
	case LocPair:
		return l.Pair.String()
	case LocIndirect:
		return "(" + l.Pair.String() + ")"
	case LocHLInc:
		return "(HL+)"
	case LocHLDec:
		return "(HL-)"
	case LocAbsolute:
		return fmt.Sprintf("($%04X)", l.Value)
	case LocHigh:
		return fmt.Sprintf("($FF00+$%02X)", l.Value)
	case LocHighC:
		return "($FF00+C)"
	case LocImmediate8:
		return fmt.Sprintf("$%02X", l.Value)
	case LocImmediate16:
		return fmt.Sprintf("$%04X", l.Value)
	}
	return fmt.Sprintf("Location(%d)", uint8(l.Kind))
}
