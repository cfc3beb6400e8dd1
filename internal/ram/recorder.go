package ram

import "fmt"

// Op identifies the kind of bus access.
type Op uint8

const (
	OpReadByte Op = iota
	OpReadWord
	OpWriteByte
	OpWriteWord
)

func (o Op) String() string {
	switch o {
	case OpReadByte:
		return "read8"
	case OpReadWord:
		return "read16"
	case OpWriteByte:
		return "write8"
	case OpWriteWord:
		return "write16"
	}
	return "?"
}

// Access is a single recorded bus access.
type Access struct {
	Op      Op
	Address uint16
	Value   uint16
}

func (a Access) String() string {
	return fmt.Sprintf("%s $%04X=%04X", a.Op, a.Address, a.Value)
}

// Bus is the memory capability consumed by the CPU.
type Bus interface {
	ReadByte(address uint16) uint8
	ReadWord(address uint16) uint16
	WriteByte(address uint16, value uint8)
	WriteWord(address uint16, value uint16)
}

// Recorder wraps a Bus and records every access made through it.
type Recorder struct {
	Bus
	Accesses []Access
}

// NewRecorder returns a Recorder wrapping b.
func NewRecorder(b Bus) *Recorder {
	return &Recorder{Bus: b}
}

func (r *Recorder) ReadByte(address uint16) uint8 {
	v := r.Bus.ReadByte(address)
	r.Accesses = append(r.Accesses, Access{OpReadByte, address, uint16(v)})
	return v
}

func (r *Recorder) ReadWord(address uint16) uint16 {
	v := r.Bus.ReadWord(address)
	r.Accesses = append(r.Accesses, Access{OpReadWord, address, v})
	return v
}

func (r *Recorder) WriteByte(address uint16, value uint8) {
	r.Accesses = append(r.Accesses, Access{OpWriteByte, address, uint16(value)})
	r.Bus.WriteByte(address, value)
}

func (r *Recorder) WriteWord(address uint16, value uint16) {
	r.Accesses = append(r.Accesses, Access{OpWriteWord, address, value})
	r.Bus.WriteWord(address, value)
}

// Writes returns only the recorded write accesses.
func (r *Recorder) Writes() []Access {
	var w []Access
	for _, a := range r.Accesses {
		if a.Op == OpWriteByte || a.Op == OpWriteWord {
			w = append(w, a)
		}
	}
	return w
}

// Reset discards all recorded accesses.
func (r *Recorder) Reset() {
	r.Accesses = r.Accesses[:0]
}
