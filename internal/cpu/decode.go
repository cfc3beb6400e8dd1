package cpu

import "github.com/thelolagemann/gomeboy-core/internal/opcodes"

// Bus is the memory the CPU fetches from, reads and writes. Words are
// little endian.
type Bus interface {
	ReadByte(address uint16) uint8
	ReadWord(address uint16) uint16
	WriteByte(address uint16, value uint8)
	WriteWord(address uint16, value uint16)
}

// Decode decodes the instruction at PC, advancing PC past the opcode and
// any operands it consumes. On error no instruction is returned and PC
// has advanced past the offending opcode.
func Decode(r *RegisterFile, b Bus) (Instruction, error) {
	i, _, err := decode(r, b)
	return i, err
}

func fetch(r *RegisterFile, b Bus) uint8 {
	v := b.ReadByte(r.PC)
	r.PC++
	return v
}

func fetchWord(r *RegisterFile, b Bus) uint16 {
	v := b.ReadWord(r.PC)
	r.PC += 2
	return v
}

// target decodes a 3-bit register index. Callers shift the field into
// the low bits first.
func target(bits uint8) Target { return Target(bits & 0x07) }

// condition decodes bits 4-3 of a conditional jump.
func condition(b uint8) Condition { return Condition(b >> 3 & 0x03) }

// pair decodes bits 5-4 as BC, DE, HL or SP.
func pair(b uint8) Pair { return Pair(b >> 4 & 0x03) }

// stackPair decodes bits 5-4 as BC, DE, HL or AF.
func stackPair(b uint8) Pair {
	if p := pair(b); p != PairSP {
		return p
	}
	return PairAF
}

// indirect decodes bits 5-4 of LD (r16),A and LD A,(r16).
func indirect(b uint8) Location {
	switch b >> 4 & 0x03 {
	case 0:
		return Indirect(PairBC)
	case 1:
		return Indirect(PairDE)
	case 2:
		return HLInc()
	}
	return HLDec()
}

func decode(r *RegisterFile, b Bus) (Instruction, opcodes.Opcode, error) {
	pc := r.PC
	code := fetch(r, b)
	o, err := opcodes.Decode(code)
	if err != nil {
		return nil, o, &IllegalOpcodeError{Opcode: code, PC: pc}
	}

	switch o.Mnemonic {
	case opcodes.Add, opcodes.Adc, opcodes.Sub, opcodes.Sbc,
		opcodes.And, opcodes.Xor, opcodes.Or, opcodes.Cp:
		switch {
		case code&0xCF == 0x09:
			return AddHL{Src: pair(code)}, o, nil
		case code == 0xE8:
			return AddSP{Offset: int8(fetch(r, b))}, o, nil
		case code&0xC7 == 0xC6:
			return ALUImmediate{Op: ALUOp(code >> 3 & 0x07), Value: fetch(r, b)}, o, nil
		case code&0xC0 == 0x80:
			return ALU{Op: ALUOp(code >> 3 & 0x07), Src: target(code)}, o, nil
		}
	case opcodes.Inc, opcodes.Dec:
		if code&0xC7 == 0x03 {
			return IncDec16{Dec: code&0x08 != 0, Pair: pair(code)}, o, nil
		}
		return IncDec{Dec: o.Mnemonic == opcodes.Dec, Target: target(code >> 3)}, o, nil
	case opcodes.Rlca, opcodes.Rrca, opcodes.Rla, opcodes.Rra,
		opcodes.Daa, opcodes.Cpl, opcodes.Scf, opcodes.Ccf:
		return Accumulator{Op: AccOp(code >> 3 & 0x07)}, o, nil
	case opcodes.Jp:
		switch code {
		case 0xE9:
			return Jump{Kind: JumpJPHL, Cond: CondAlways}, o, nil
		case 0xC3:
			return Jump{Kind: JumpJP, Cond: CondAlways, Address: fetchWord(r, b)}, o, nil
		}
		return Jump{Kind: JumpJP, Cond: condition(code), Address: fetchWord(r, b)}, o, nil
	case opcodes.Jr:
		cond := CondAlways
		if code != 0x18 {
			cond = condition(code)
		}
		return Jump{Kind: JumpJR, Cond: cond, Offset: int8(fetch(r, b))}, o, nil
	case opcodes.Call:
		cond := CondAlways
		if code != 0xCD {
			cond = condition(code)
		}
		return Jump{Kind: JumpCall, Cond: cond, Address: fetchWord(r, b)}, o, nil
	case opcodes.Ret:
		cond := CondAlways
		if code != 0xC9 {
			cond = condition(code)
		}
		return Jump{Kind: JumpRet, Cond: cond}, o, nil
	case opcodes.Reti:
		return Jump{Kind: JumpRetI, Cond: CondAlways}, o, nil
	case opcodes.Rst:
		return Jump{Kind: JumpRst, Cond: CondAlways, Address: uint16(code & 0x38)}, o, nil
	case opcodes.Ld:
		if i := decodeLoad(code, r, b); i != nil {
			return i, o, nil
		}
	case opcodes.Ldh:
		switch code {
		case 0xE0:
			return Load{Dst: High(fetch(r, b)), Src: Reg(TargetA)}, o, nil
		case 0xF0:
			return Load{Dst: Reg(TargetA), Src: High(fetch(r, b))}, o, nil
		case 0xE2:
			return Load{Dst: HighC(), Src: Reg(TargetA)}, o, nil
		case 0xF2:
			return Load{Dst: Reg(TargetA), Src: HighC()}, o, nil
		}
	case opcodes.Push:
		return Stack{Op: OpPush, Pair: stackPair(code)}, o, nil
	case opcodes.Pop:
		return Stack{Op: OpPop, Pair: stackPair(code)}, o, nil
	case opcodes.Nop:
		return Misc{Op: OpNOP}, o, nil
	case opcodes.Halt:
		return Misc{Op: OpHALT}, o, nil
	case opcodes.Stop:
		fetch(r, b)
		return Misc{Op: OpSTOP}, o, nil
	case opcodes.Di:
		return Misc{Op: OpDI}, o, nil
	case opcodes.Ei:
		return Misc{Op: OpEI}, o, nil
	case opcodes.Prefix:
		return decodePrefixed(r, b)
	}

	return nil, o, &IllegalOpcodeError{Opcode: code, PC: pc, Unimplemented: true}
}

func decodeLoad(code uint8, r *RegisterFile, b Bus) Instruction {
	switch code {
	case 0xEA:
		return Load{Dst: Absolute(fetchWord(r, b)), Src: Reg(TargetA)}
	case 0xFA:
		return Load{Dst: Reg(TargetA), Src: Absolute(fetchWord(r, b))}
	case 0x08:
		return Load{Dst: Absolute(fetchWord(r, b)), Src: Reg16(PairSP)}
	case 0xF8:
		return LoadHLSP{Offset: int8(fetch(r, b))}
	case 0xF9:
		return Load{Dst: Reg16(PairSP), Src: Reg16(PairHL)}
	}

	switch {
	case code&0xC0 == 0x40:
		return Load{Dst: Reg(target(code >> 3)), Src: Reg(target(code))}
	case code&0xC7 == 0x06:
		return Load{Dst: Reg(target(code >> 3)), Src: Imm8(fetch(r, b))}
	case code&0xCF == 0x01:
		return Load{Dst: Reg16(pair(code)), Src: Imm16(fetchWord(r, b))}
	case code&0xCF == 0x02:
		return Load{Dst: indirect(code), Src: Reg(TargetA)}
	case code&0xCF == 0x0A:
		return Load{Dst: Reg(TargetA), Src: indirect(code)}
	}
	return nil
}

func decodePrefixed(r *RegisterFile, b Bus) (Instruction, opcodes.Opcode, error) {
	code := fetch(r, b)
	o := opcodes.DecodePrefixed(code)
	t := target(code)
	index := code >> 3 & 0x07

	switch code >> 6 {
	case 0:
		return Prefixed{Op: CBOp(index), Target: t}, o, nil
	case 1:
		return Prefixed{Op: OpBIT, Bit: index, Target: t}, o, nil
	case 2:
		return Prefixed{Op: OpRES, Bit: index, Target: t}, o, nil
	}
	return Prefixed{Op: OpSET, Bit: index, Target: t}, o, nil
}
