package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
)

func newMachine(t *testing.T) (*cpu.CPU, *ram.RAM) {
	t.Helper()
	mem := ram.NewRAMFromImage([]byte{
		0x31, 0xFE, 0xFF, // LD SP, $FFFE
		0x3E, 0x42, //       LD A, $42
		0xF5, //             PUSH AF
		0xFB, //             EI
		0x76, //             HALT
	})
	c := cpu.New(mem)
	for !c.Halted() {
		_, err := c.Step()
		require.NoError(t, err)
	}
	return c, mem
}

func TestEncodeDecode(t *testing.T) {
	c, mem := newMachine(t)
	data, err := Encode(c, mem)
	require.NoError(t, err)

	restoredCPU, restoredRAM := cpu.New(ram.NewRAM()), ram.NewRAM()
	require.NoError(t, Decode(data, restoredCPU, restoredRAM))

	assert.Equal(t, c.Registers(), restoredCPU.Registers())
	assert.True(t, restoredCPU.Halted())
	assert.True(t, restoredCPU.IME())
	assert.Equal(t, mem.Bytes(), restoredRAM.Bytes())
	assert.Equal(t, Fingerprint(c, mem), Fingerprint(restoredCPU, restoredRAM))
}

func TestDecode_Errors(t *testing.T) {
	c, mem := newMachine(t)
	data, err := Encode(c, mem)
	require.NoError(t, err)

	t.Run("not a snapshot", func(t *testing.T) {
		assert.ErrorIs(t, Decode([]byte("GBCS"), c), ErrNotSnapshot)
		assert.ErrorIs(t, Decode(append([]byte("XXXX"), data[4:]...), c), ErrNotSnapshot)
	})

	t.Run("version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = Version + 1
		assert.ErrorIs(t, Decode(bad, c), ErrVersion)
	})

	t.Run("checksum", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[5] ^= 0xFF
		assert.ErrorIs(t, Decode(bad, c), ErrChecksum)
	})

	t.Run("short state", func(t *testing.T) {
		small, err := Encode(c)
		require.NoError(t, err)
		assert.Error(t, Decode(small, cpu.New(ram.NewRAM()), ram.NewRAM()))
	})
}

func TestSaveLoad(t *testing.T) {
	c, mem := newMachine(t)
	path := filepath.Join(t.TempDir(), "state.snap")
	require.NoError(t, Save(path, c, mem))

	restoredCPU, restoredRAM := cpu.New(ram.NewRAM()), ram.NewRAM()
	require.NoError(t, Load(path, restoredCPU, restoredRAM))
	assert.Equal(t, Fingerprint(c, mem), Fingerprint(restoredCPU, restoredRAM))

	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.snap"), restoredCPU))
}

func TestFingerprint(t *testing.T) {
	c1, mem1 := newMachine(t)
	c2, mem2 := newMachine(t)
	assert.Equal(t, Fingerprint(c1, mem1), Fingerprint(c2, mem2))

	mem2.WriteByte(0xC000, 1)
	assert.NotEqual(t, Fingerprint(c1, mem1), Fingerprint(c2, mem2))
}
