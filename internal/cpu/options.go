package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithTrace logs every executed instruction, along with the register
// file before it executes, at debug level.
func WithTrace() Opt {
	return func(c *CPU) {
		c.trace = true
	}
}

// WithRegisters sets the initial register file, e.g. the post boot ROM
// values or a custom entry point.
func WithRegisters(r RegisterFile) Opt {
	return func(c *CPU) {
		c.RegisterFile = r
		c.F &= types.HighNibble
	}
}
