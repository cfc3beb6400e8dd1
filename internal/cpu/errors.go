package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/opcodes"
)

var (
	// ErrIllegalOpcode is returned when the byte at PC does not decode to
	// an instruction.
	ErrIllegalOpcode = opcodes.ErrIllegalOpcode
	// ErrIllegalInstruction is returned when an instruction combines
	// operands the hardware has no encoding for.
	ErrIllegalInstruction = errors.New("illegal instruction")
)

// IllegalOpcodeError is returned by the decoder for one of the eleven
// reserved opcodes, or for an opcode whose mnemonic has no decode case.
type IllegalOpcodeError struct {
	Opcode   uint8
	Prefixed bool
	// PC is the address the opcode was fetched from.
	PC uint16
	// Unimplemented is set when the opcode is legal but could not be
	// decoded.
	Unimplemented bool
}

func (e *IllegalOpcodeError) Error() string {
	prefix := ""
	if e.Prefixed {
		prefix = "CB "
	}
	if e.Unimplemented {
		return fmt.Sprintf("%s: %s%02X at $%04X has no decoder", ErrIllegalOpcode, prefix, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%s: %s%02X at $%04X", ErrIllegalOpcode, prefix, e.Opcode, e.PC)
}

func (e *IllegalOpcodeError) Unwrap() error { return ErrIllegalOpcode }

// IllegalInstructionError is returned by CPU.Execute for an instruction
// with an operand combination that can not be executed.
type IllegalInstructionError struct {
	Instruction Instruction
}

func (e *IllegalInstructionError) Error() string {
	if e.Instruction == nil {
		return ErrIllegalInstruction.Error() + ": <nil>"
	}
	return fmt.Sprintf("%s: %s (%#v)", ErrIllegalInstruction, e.Instruction, e.Instruction)
}

func (e *IllegalInstructionError) Unwrap() error { return ErrIllegalInstruction }

func illegal(i Instruction) error {
	return &IllegalInstructionError{Instruction: i}
}
