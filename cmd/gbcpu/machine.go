package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/snapshot"
)

// hexFlag is a 16-bit flag value accepting decimal, 0x or $ prefixed
// hexadecimal.
type hexFlag uint16

var _ pflag.Value = (*hexFlag)(nil)

func (h *hexFlag) String() string { return fmt.Sprintf("0x%04X", uint16(*h)) }

func (h *hexFlag) Set(s string) error {
	if len(s) > 0 && s[0] == '$' {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	*h = hexFlag(v)
	return nil
}

func (h *hexFlag) Type() string { return "address" }

// runConfig holds the flags shared by the commands that step a CPU.
type runConfig struct {
	steps    int
	trace    bool
	traceMem bool
	snapshot string
}

func (c *runConfig) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.steps, "steps", 1_000_000, "Maximum number of instructions to execute (0 = until HALT or STOP)")
	fs.BoolVar(&c.trace, "trace", false, "Log every executed instruction")
	fs.BoolVar(&c.traceMem, "trace-mem", false, "Log every memory write")
	fs.StringVar(&c.snapshot, "snapshot", "", "Write a snapshot of the final state to this file")
}

// machine is a CPU and the memory it runs from.
type machine struct {
	cpu *cpu.CPU
	mem *ram.RAM
	rec *ram.Recorder
	log log.Logger
}

func newMachine(mem *ram.RAM, cfg runConfig, l log.Logger, opts ...cpu.Opt) *machine {
	m := &machine{mem: mem, log: l}
	var bus cpu.Bus = mem
	if cfg.traceMem {
		m.rec = ram.NewRecorder(mem)
		bus = m.rec
	}
	opts = append(opts, cpu.WithLogger(l))
	if cfg.trace {
		opts = append(opts, cpu.WithTrace())
	}
	m.cpu = cpu.New(bus, opts...)
	return m
}

type stats struct {
	steps  int
	cycles uint64
}

// run steps the CPU until it halts, stops, fails or has executed the
// configured number of instructions.
func (m *machine) run(cfg runConfig) (stats, error) {
	var s stats
	for cfg.steps == 0 || s.steps < cfg.steps {
		if m.cpu.Halted() || m.cpu.LowPower() {
			break
		}
		cycles, err := m.cpu.Step()
		if err != nil {
			return s, err
		}
		s.steps++
		s.cycles += uint64(cycles)

		if m.rec != nil {
			for _, a := range m.rec.Writes() {
				m.log.Infof("  %s", a)
			}
			m.rec.Reset()
		}
	}

	if cfg.snapshot != "" {
		if err := snapshot.Save(cfg.snapshot, m.cpu, m.mem); err != nil {
			return s, err
		}
		m.log.Infof("snapshot written to %s", cfg.snapshot)
	}
	return s, nil
}

func (m *machine) fingerprint() uint64 {
	return snapshot.Fingerprint(m.cpu, m.mem)
}

var (
	labelColor = color.New(color.FgCyan, color.Bold)
	setColor   = color.New(color.FgGreen, color.Bold)
	unsetColor = color.New(color.Faint)
)

// dump prints the register file, the CPU state and the run statistics.
func (m *machine) dump(w io.Writer, s stats) {
	r := m.cpu.Registers()
	for _, reg := range []struct {
		name  string
		value uint8
	}{{"A", r.A}, {"F", r.F}, {"B", r.B}, {"C", r.C}, {"D", r.D}, {"E", r.E}, {"H", r.H}, {"L", r.L}} {
		labelColor.Fprintf(w, "%s ", reg.name)
		fmt.Fprintf(w, "%02X  ", reg.value)
	}
	fmt.Fprintln(w)

	labelColor.Fprint(w, "SP ")
	fmt.Fprintf(w, "%04X  ", r.SP)
	labelColor.Fprint(w, "PC ")
	fmt.Fprintf(w, "%04X  ", r.PC)
	for _, f := range []struct {
		name string
		flag cpu.Flag
	}{{"Z", cpu.FlagZero}, {"N", cpu.FlagSubtract}, {"H", cpu.FlagHalfCarry}, {"C", cpu.FlagCarry}} {
		if r.Flag(f.flag) {
			setColor.Fprint(w, f.name)
		} else {
			unsetColor.Fprint(w, f.name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "IME %t  halted %t  stopped %t\n", m.cpu.IME(), m.cpu.Halted(), m.cpu.LowPower())
	fmt.Fprintf(w, "%d instructions, %d M-cycles\n", s.steps, s.cycles)
}
