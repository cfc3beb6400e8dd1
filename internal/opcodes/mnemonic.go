package opcodes

// Mnemonic is the operation class of an opcode, independent of how its
// operands are encoded. The decoder dispatches on it.
type Mnemonic uint8

const (
	Illegal Mnemonic = iota
	Nop
	Ld
	Ldh
	Inc
	Dec
	Add
	Adc
	Sub
	Sbc
	And
	Xor
	Or
	Cp
	Rlca
	Rrca
	Rla
	Rra
	Daa
	Cpl
	Scf
	Ccf
	Jr
	Jp
	Call
	Ret
	Reti
	Rst
	Push
	Pop
	Halt
	Stop
	Di
	Ei
	Prefix

	// CB-prefixed space
	Rlc
	Rrc
	Rl
	Rr
	Sla
	Sra
	Swap
	Srl
	Bit
	Res
	Set
)

var mnemonicNames = [...]string{
	Illegal: "ILLEGAL",
	Nop:     "NOP",
	Ld:      "LD",
	Ldh:     "LDH",
	Inc:     "INC",
	Dec:     "DEC",
	Add:     "ADD",
	Adc:     "ADC",
	Sub:     "SUB",
	Sbc:     "SBC",
	And:     "AND",
	Xor:     "XOR",
	Or:      "OR",
	Cp:      "CP",
	Rlca:    "RLCA",
	Rrca:    "RRCA",
	Rla:     "RLA",
	Rra:     "RRA",
	Daa:     "DAA",
	Cpl:     "CPL",
	Scf:     "SCF",
	Ccf:     "CCF",
	Jr:      "JR",
	Jp:      "JP",
	Call:    "CALL",
	Ret:     "RET",
	Reti:    "RETI",
	Rst:     "RST",
	Push:    "PUSH",
	Pop:     "POP",
	Halt:    "HALT",
	Stop:    "STOP",
	Di:      "DI",
	Ei:      "EI",
	Prefix:  "PREFIX",
	Rlc:     "RLC",
	Rrc:     "RRC",
	Rl:      "RL",
	Rr:      "RR",
	Sla:     "SLA",
	Sra:     "SRA",
	Swap:    "SWAP",
	Srl:     "SRL",
	Bit:     "BIT",
	Res:     "RES",
	Set:     "SET",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "UNKNOWN"
}
