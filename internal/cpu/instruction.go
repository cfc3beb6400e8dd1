package cpu

import "fmt"

// Instruction is a single decoded instruction, ready to be executed. It
// is produced by Decode and consumed by CPU.Execute.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// ALUOp is an 8-bit arithmetic or logic operation on A. The order
// follows bits 5-3 of the 0x80-0xBF opcode block.
type ALUOp uint8

const (
	OpAdd ALUOp = iota
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCp
)

var aluNames = [...]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func (o ALUOp) String() string {
	if o <= OpCp {
		return aluNames[o]
	}
	return fmt.Sprintf("ALUOp(%d)", uint8(o))
}

// ALU applies Op to A and an 8-bit register or (HL).
type ALU struct {
	Op  ALUOp
	Src Target
}

// ALUImmediate applies Op to A and an 8-bit immediate.
type ALUImmediate struct {
	Op    ALUOp
	Value uint8
}

// IncDec increments or decrements an 8-bit register or (HL).
type IncDec struct {
	Dec    bool
	Target Target
}

// IncDec16 increments or decrements a register pair. No flags are
// affected.
type IncDec16 struct {
	Dec  bool
	Pair Pair
}

// AddHL adds a register pair to HL.
type AddHL struct {
	Src Pair
}

// AddSP adds a signed offset to SP.
type AddSP struct {
	Offset int8
}

// LoadHLSP loads SP plus a signed offset into HL.
type LoadHLSP struct {
	Offset int8
}

// AccOp is an operation on A (and the flags) with no operand. The order
// follows bits 5-3 of opcodes 0x07-0x3F.
type AccOp uint8

const (
	OpRLCA AccOp = iota
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF
)

var accNames = [...]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}

func (o AccOp) String() string {
	if o <= OpCCF {
		return accNames[o]
	}
	return fmt.Sprintf("AccOp(%d)", uint8(o))
}

// Accumulator is one of RLCA, RRCA, RLA, RRA, DAA, CPL, SCF and CCF.
type Accumulator struct {
	Op AccOp
}

// CBOp is an operation from the CB prefixed space. The rotates and
// shifts follow bits 5-3 of CB 0x00-0x3F.
type CBOp uint8

const (
	OpRLC CBOp = iota
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET
)

var cbNames = [...]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL", "BIT", "RES", "SET"}

func (o CBOp) String() string {
	if o <= OpSET {
		return cbNames[o]
	}
	return fmt.Sprintf("CBOp(%d)", uint8(o))
}

// Prefixed is an instruction from the CB prefixed space. Bit is only
// meaningful for BIT, RES and SET.
type Prefixed struct {
	Op     CBOp
	Bit    uint8
	Target Target
}

// JumpKind selects the control flow operation of a Jump.
type JumpKind uint8

const (
	JumpJP JumpKind = iota
	JumpJPHL
	JumpJR
	JumpCall
	JumpRet
	JumpRetI
	JumpRst
)

// Jump transfers control. Address is used by JP, CALL and RST, Offset
// by JR.
type Jump struct {
	Kind    JumpKind
	Cond    Condition
	Address uint16
	Offset  int8
}

// Load moves a byte or a word from Src to Dst.
type Load struct {
	Dst, Src Location
}

// StackOp is PUSH or POP.
type StackOp uint8

const (
	OpPush StackOp = iota
	OpPop
)

// Stack pushes or pops a register pair.
type Stack struct {
	Op   StackOp
	Pair Pair
}

// MiscOp is an instruction that touches only the CPU's control state.
type MiscOp uint8

const (
	OpNOP MiscOp = iota
	OpHALT
	OpSTOP
	OpDI
	OpEI
)

var miscNames = [...]string{"NOP", "HALT", "STOP", "DI", "EI"}

// Misc is NOP, HALT, STOP, DI or EI.
type Misc struct {
	Op MiscOp
}

func (ALU) instruction()          {}
func (ALUImmediate) instruction() {}
func (IncDec) instruction()       {}
func (IncDec16) instruction()     {}
func (AddHL) instruction()        {}
func (AddSP) instruction()        {}
func (LoadHLSP) instruction()     {}
func (Accumulator) instruction()  {}
func (Prefixed) instruction()     {}
func (Jump) instruction()         {}
func (Load) instruction()         {}
func (Stack) instruction()        {}
func (Misc) instruction()         {}

func (i ALU) String() string { return fmt.Sprintf("%s A, %s", i.Op, i.Src) }

func (i ALUImmediate) String() string { return fmt.Sprintf("%s A, $%02X", i.Op, i.Value) }

func (i IncDec) String() string { return incDecName(i.Dec) + " " + i.Target.String() }

func (i IncDec16) String() string { return incDecName(i.Dec) + " " + i.Pair.String() }

func incDecName(dec bool) string {
	if dec {
		return "DEC"
	}
	return "INC"
}

func (i AddHL) String() string { return "ADD HL, " + i.Src.String() }

func (i AddSP) String() string { return fmt.Sprintf("ADD SP, %d", i.Offset) }

func (i LoadHLSP) String() string { return fmt.Sprintf("LD HL, SP%+d", i.Offset) }

func (i Accumulator) String() string { return i.Op.String() }

func (i Prefixed) String() string {
	switch i.Op {
	case OpBIT, OpRES, OpSET:
		return fmt.Sprintf("%s %d, %s", i.Op, i.Bit, i.Target)
	}
	return fmt.Sprintf("%s %s", i.Op, i.Target)
}

func (i Jump) String() string {
	var name string
	switch i.Kind {
	case JumpJP:
		name = "JP"
	case JumpJPHL:
		return "JP HL"
	case JumpJR:
		name = "JR"
	case JumpCall:
		name = "CALL"
	case JumpRet:
		if i.Cond == CondAlways {
			return "RET"
		}
		return "RET " + i.Cond.String()
	case JumpRetI:
		return "RETI"
	case JumpRst:
		return fmt.Sprintf("RST $%02X", i.Address)
	default:
		return fmt.Sprintf("Jump(%d)", uint8(i.Kind))
	}
	operand := fmt.Sprintf("$%04X", i.Address)
	if i.Kind == JumpJR {
		operand = fmt.Sprintf("%d", i.Offset)
	}
	if i.Cond == CondAlways {
		return name + " " + operand
	}
	return name + " " + i.Cond.String() + ", " + operand
}

func (i Load) String() string { return fmt.Sprintf("LD %s, %s", i.Dst, i.Src) }

func (i Stack) String() string {
	if i.Op == OpPop {
		return "POP " + i.Pair.String()
	}
	return "PUSH " + i.Pair.String()
}

func (i Misc) String() string {
	if i.Op <= OpEI {
		return miscNames[i.Op]
	}
	return fmt.Sprintf("MiscOp(%d)", uint8(i.Op))
}
