package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestRAM(t *testing.T) {
	r := NewRAM()
	r.WriteWord(0xC000, 0x1234)
	assert.Equal(t, uint8(0x34), r.ReadByte(0xC000))
	assert.Equal(t, uint8(0x12), r.ReadByte(0xC001))
	assert.Equal(t, uint16(0x1234), r.ReadWord(0xC000))

	t.Run("word wraps", func(t *testing.T) {
		r.WriteWord(0xFFFF, 0xABCD)
		assert.Equal(t, uint8(0xCD), r.ReadByte(0xFFFF))
		assert.Equal(t, uint8(0xAB), r.ReadByte(0x0000))
		assert.Equal(t, uint16(0xABCD), r.ReadWord(0xFFFF))
	})

	t.Run("image", func(t *testing.T) {
		img := NewRAMFromImage([]byte{0x3E, 0x42})
		assert.Equal(t, uint8(0x3E), img.ReadByte(0))
		assert.Equal(t, uint8(0x42), img.ReadByte(1))
		img.LoadImage(0xFFFF, []byte{1, 2})
		assert.Equal(t, uint8(1), img.ReadByte(0xFFFF))
		assert.Equal(t, uint8(2), img.ReadByte(0x0000))
	})
}

func TestRAM_State(t *testing.T) {
	r := NewRAM()
	r.WriteByte(0x8000, 0x99)
	s := types.NewState()
	r.Save(s)

	restored := NewRAM()
	restored.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, r.Bytes(), restored.Bytes())
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(NewRAM())
	rec.WriteWord(0xFFFC, 0xBEEF)
	v := rec.ReadWord(0xFFFC)
	rec.ReadByte(0x0000)

	assert.Equal(t, uint16(0xBEEF), v)
	assert.Equal(t, []Access{
		{OpWriteWord, 0xFFFC, 0xBEEF},
		{OpReadWord, 0xFFFC, 0xBEEF},
		{OpReadByte, 0x0000, 0},
	}, rec.Accesses)
	assert.Len(t, rec.Writes(), 1)

	rec.Reset()
	assert.Empty(t, rec.Accesses)
}
