package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const testOrigin = 0x0100

// newTestCPU returns a CPU with program loaded at testOrigin, PC pointing
// at it and SP at the top of memory.
func newTestCPU(program ...byte) (*CPU, *ram.RAM) {
	mem := ram.NewRAM()
	mem.LoadImage(testOrigin, program)
	c := New(mem, WithRegisters(RegisterFile{PC: testOrigin, SP: 0xFFFE}))
	return c, mem
}

// run steps the CPU n times, failing the test on error.
func run(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestCPU_IllegalOpcodes(t *testing.T) {
	for _, b := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		c, _ := newTestCPU(b)
		cycles, err := c.Step()
		if !errors.Is(err, ErrIllegalOpcode) {
			t.Errorf("0x%02X: expected ErrIllegalOpcode, got %v", b, err)
			continue
		}
		var illegalErr *IllegalOpcodeError
		if !errors.As(err, &illegalErr) || illegalErr.Opcode != b || illegalErr.PC != testOrigin {
			t.Errorf("0x%02X: unexpected error %#v", b, err)
		}
		if cycles != 0 {
			t.Errorf("0x%02X: expected 0 cycles, got %d", b, cycles)
		}
	}
}

func TestCPU_Cycles(t *testing.T) {
	for _, test := range []struct {
		name    string
		program []byte
		flags   uint8
		cycles  uint8
	}{
		{"NOP", []byte{0x00}, 0, 1},
		{"LD BC, n16", []byte{0x01, 0x34, 0x12}, 0, 3},
		{"JP NZ taken", []byte{0xC2, 0x00, 0x02}, 0, 4},
		{"JP NZ not taken", []byte{0xC2, 0x00, 0x02}, 0x80, 3},
		{"JR C taken", []byte{0x38, 0x02}, 0x10, 3},
		{"JR C not taken", []byte{0x38, 0x02}, 0, 2},
		{"RET Z not taken", []byte{0xC8}, 0, 2},
		{"CALL a16", []byte{0xCD, 0x00, 0x02}, 0, 6},
		{"RLC B", []byte{0xCB, 0x00}, 0, 2},
		{"SET 0, (HL)", []byte{0xCB, 0xC6}, 0, 4},
		{"BIT 0, (HL)", []byte{0xCB, 0x46}, 0, 3},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, _ := newTestCPU(test.program...)
			c.F = test.flags
			cycles, err := c.Step()
			require.NoError(t, err)
			assert.Equal(t, test.cycles, cycles)
		})
	}
}

func TestCPU_Halt(t *testing.T) {
	c, _ := newTestCPU(0x76, 0x04)
	run(t, c, 1)
	assert.True(t, c.Halted())
	pc := c.PC()

	run(t, c, 3)
	assert.Equal(t, pc, c.PC(), "halted CPU should not fetch")
	assert.Equal(t, uint8(0), c.B)

	c.Resume()
	run(t, c, 1)
	assert.False(t, c.Halted())
	assert.Equal(t, uint8(1), c.B)
}

func TestCPU_Stop(t *testing.T) {
	c, _ := newTestCPU(0x10, 0x00, 0x04)
	run(t, c, 1)
	assert.True(t, c.LowPower())
	assert.Equal(t, uint16(testOrigin+2), c.PC(), "STOP consumes the following byte")

	run(t, c, 1)
	assert.Equal(t, uint8(0), c.B)

	c.Resume()
	run(t, c, 1)
	assert.Equal(t, uint8(1), c.B)
}

func TestCPU_Interrupts(t *testing.T) {
	c, _ := newTestCPU(0xFB, 0xF3)
	run(t, c, 1)
	assert.True(t, c.IME(), "EI")
	run(t, c, 1)
	assert.False(t, c.IME(), "DI")

	c.SetIME(true)
	assert.True(t, c.IME())
}

func TestCPU_Reset(t *testing.T) {
	c, mem := newTestCPU(0x3E, 0x42, 0x76)
	run(t, c, 2)
	c.SetIME(true)

	c.Reset()
	assert.Equal(t, RegisterFile{}, c.Registers())
	assert.False(t, c.Halted())
	assert.False(t, c.IME())
	assert.Equal(t, uint8(0x3E), mem.ReadByte(testOrigin), "reset leaves memory alone")
}

func TestCPU_Execute(t *testing.T) {
	c, _ := newTestCPU()

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, c.Execute(nil), ErrIllegalInstruction)
	})

	t.Run("pre-decoded", func(t *testing.T) {
		require.NoError(t, c.Execute(Load{Dst: Reg(TargetA), Src: Imm8(0x12)}))
		require.NoError(t, c.Execute(ALUImmediate{Op: OpAdd, Value: 0x30}))
		assert.Equal(t, uint8(0x42), c.A)
		assert.Equal(t, uint16(testOrigin), c.PC(), "execute does not fetch")
	})

	t.Run("error carries instruction", func(t *testing.T) {
		instr := Prefixed{Op: OpBIT, Bit: 8, Target: TargetA}
		err := c.Execute(instr)
		var illegalErr *IllegalInstructionError
		require.ErrorAs(t, err, &illegalErr)
		assert.Equal(t, Instruction(instr), illegalErr.Instruction)
	})
}

func TestCPU_Decode(t *testing.T) {
	c, _ := newTestCPU(0x21, 0x00, 0xC0)
	instr, err := c.Decode()
	require.NoError(t, err)
	assert.Equal(t, Load{Dst: Reg16(PairHL), Src: Imm16(0xC000)}, instr)
	assert.Equal(t, uint16(testOrigin+3), c.PC())
	assert.Equal(t, uint16(0), c.HL(), "decode does not execute")
}

// countdown decrements B from 0x10 to zero, pushing BC each time, then
// halts.
var countdown = []byte{
	0x06, 0x10, //       LD B, $10
	0x21, 0x00, 0xC0, // LD HL, $C000
	0x78, //             LD A, B
	0x22, //             LD (HL+), A
	0xC5, //             PUSH BC
	0x05, //             DEC B
	0x20, 0xFA, //       JR NZ, -6
	0xCB, 0x37, //       SWAP A
	0x76, //             HALT
}

func TestCPU_Determinism(t *testing.T) {
	execute := func() (*CPU, *ram.RAM) {
		c, mem := newTestCPU(countdown...)
		for !c.Halted() {
			run(t, c, 1)
		}
		return c, mem
	}

	c1, mem1 := execute()
	c2, mem2 := execute()
	assert.Equal(t, c1.Fingerprint(), c2.Fingerprint())
	assert.Equal(t, c1.Registers(), c2.Registers())
	assert.True(t, bytes.Equal(mem1.Bytes(), mem2.Bytes()))

	assert.Equal(t, uint8(0), c1.B)
	assert.Equal(t, uint16(0xFFFE-0x20), c1.SP())
	assert.Equal(t, uint8(0x01), mem1.ReadByte(0xC00F))

	c2.A++
	assert.NotEqual(t, c1.Fingerprint(), c2.Fingerprint())
}

func TestCPU_State(t *testing.T) {
	c, _ := newTestCPU(countdown...)
	run(t, c, 6)
	c.SetIME(true)

	s := types.NewState()
	c.Save(s)

	restored := New(ram.NewRAM())
	restored.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, c.Registers(), restored.Registers())
	assert.Equal(t, c.IME(), restored.IME())
	assert.Equal(t, c.Fingerprint(), restored.Fingerprint())
}

func TestCPU_Trace(t *testing.T) {
	var buf bytes.Buffer
	mem := ram.NewRAMFromImage([]byte{0x06, 0x42, 0xDD})
	c := New(mem, WithLogger(log.NewWithOutput(&buf, true)), WithTrace())

	run(t, c, 1)
	assert.True(t, strings.Contains(buf.String(), "LD B, $42"), buf.String())

	_, err := c.Step()
	assert.Error(t, err)
	assert.True(t, strings.Contains(buf.String(), "illegal opcode"), buf.String())
}
