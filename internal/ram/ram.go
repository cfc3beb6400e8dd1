// Package ram provides flat 64 KiB memory implementing the CPU's bus,
// along with a bus wrapper that records every access.
package ram

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// Size is the size of the LR35902 address space.
const Size = 0x10000

// RAM represents a flat block of memory covering the whole address space.
// Every address is readable and writable.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a new zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// NewRAMFromImage returns a new RAM with image copied in at address 0.
// Bytes beyond the address space are ignored.
func NewRAMFromImage(image []byte) *RAM {
	r := &RAM{}
	copy(r.data[:], image)
	return r
}

// ReadByte returns the value at the given address.
func (r *RAM) ReadByte(address uint16) uint8 {
	return r.data[address]
}

// ReadWord returns the little-endian word at the given address. The
// high byte wraps around to 0x0000 when address is 0xFFFF.
func (r *RAM) ReadWord(address uint16) uint16 {
	return utils.BytesToUint16(r.data[address+1], r.data[address])
}

// WriteByte writes the value to the given address.
func (r *RAM) WriteByte(address uint16, value uint8) {
	r.data[address] = value
}

// WriteWord writes value to the given address, low byte first.
func (r *RAM) WriteWord(address uint16, value uint16) {
	r.data[address+1], r.data[address] = utils.Uint16ToBytes(value)
}

// LoadImage copies data into memory starting at address, wrapping at the
// end of the address space.
func (r *RAM) LoadImage(address uint16, data []byte) {
	for i, b := range data {
		r.data[address+uint16(i)] = b
	}
}

// Bytes returns the underlying memory.
func (r *RAM) Bytes() []byte {
	return r.data[:]
}

var _ types.Stater = (*RAM)(nil)

// Save writes the full contents of memory to the state.
func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data[:])
}

// Load restores the full contents of memory from the state.
func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data[:])
}
