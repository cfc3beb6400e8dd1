package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/snapshot"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	logger := func(cfg runConfig) log.Logger {
		return log.NewWithOutput(os.Stderr, debug || cfg.trace)
	}

	rootCmd := &cobra.Command{
		Use:          "gbcpu",
		Short:        "Run flat program images on an LR35902 (Game Boy) CPU core",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// run command
	var (
		runCfg           runConfig
		pc, sp, loadAddr hexFlag = 0x0100, 0xFFFE, 0x0000
	)
	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load an image into memory and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logger(runCfg)
			m, err := loadImage(args[0], uint16(loadAddr), runCfg, l,
				cpu.WithRegisters(cpu.RegisterFile{PC: uint16(pc), SP: uint16(sp)}))
			if err != nil {
				return err
			}
			return execute(cmd, m, runCfg, l)
		},
	}
	runCfg.addFlags(runCmd.Flags())
	runCmd.Flags().Var(&pc, "pc", "Initial program counter")
	runCmd.Flags().Var(&sp, "sp", "Initial stack pointer")
	runCmd.Flags().Var(&loadAddr, "load-address", "Address the image is loaded at")

	// resume command
	var resumeCfg runConfig
	resumeCmd := &cobra.Command{
		Use:   "resume [snapshot]",
		Short: "Restore a snapshot, wake the CPU and continue executing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logger(resumeCfg)
			m := newMachine(ram.NewRAM(), resumeCfg, l)
			if err := snapshot.Load(args[0], m.cpu, m.mem); err != nil {
				return err
			}
			m.cpu.Resume()
			return execute(cmd, m, resumeCfg, l)
		},
	}
	resumeCfg.addFlags(resumeCmd.Flags())

	// fingerprint command
	var (
		fpCfg         runConfig
		fpPC, fpSP    hexFlag = 0x0100, 0xFFFE
		fpLoadAddress hexFlag
	)
	fingerprintCmd := &cobra.Command{
		Use:   "fingerprint [image]",
		Short: "Run an image twice and verify both runs end in the same state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logger(fpCfg)
			var prints [2]uint64
			for i := range prints {
				m, err := loadImage(args[0], uint16(fpLoadAddress), fpCfg, l,
					cpu.WithRegisters(cpu.RegisterFile{PC: uint16(fpPC), SP: uint16(fpSP)}))
				if err != nil {
					return err
				}
				if _, err := m.run(fpCfg); err != nil {
					l.Errorf("run %d: %v", i+1, err)
					return err
				}
				prints[i] = m.fingerprint()
			}
			if prints[0] != prints[1] {
				return fmt.Errorf("runs diverged: %016x != %016x", prints[0], prints[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", prints[0])
			return nil
		},
	}
	fpCfg.addFlags(fingerprintCmd.Flags())
	fingerprintCmd.Flags().Var(&fpPC, "pc", "Initial program counter")
	fingerprintCmd.Flags().Var(&fpSP, "sp", "Initial stack pointer")
	fingerprintCmd.Flags().Var(&fpLoadAddress, "load-address", "Address the image is loaded at")

	rootCmd.AddCommand(runCmd, resumeCmd, fingerprintCmd)
	return rootCmd
}

func loadImage(path string, address uint16, cfg runConfig, l log.Logger, opts ...cpu.Opt) (*machine, error) {
	image, err := utils.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(image) > ram.Size {
		return nil, fmt.Errorf("%s: image is %d bytes, larger than the address space", path, len(image))
	}
	mem := ram.NewRAM()
	mem.LoadImage(address, image)
	l.Debugf("loaded %d bytes at $%04X", len(image), address)
	return newMachine(mem, cfg, l, opts...), nil
}

// execute runs m and dumps its final state. A step error is fatal to the
// run; the state at the failure is still dumped.
func execute(cmd *cobra.Command, m *machine, cfg runConfig, l log.Logger) error {
	s, err := m.run(cfg)
	m.dump(cmd.OutOrStdout(), s)
	if err != nil {
		l.Errorf("%v", err)
		return err
	}
	return nil
}
