package cpu

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/ram"
)

type cpuState struct {
	Pc  int     `json:"pc"`
	Sp  int     `json:"sp"`
	A   int     `json:"a"`
	B   int     `json:"b"`
	C   int     `json:"c"`
	D   int     `json:"d"`
	E   int     `json:"e"`
	F   int     `json:"f"`
	H   int     `json:"h"`
	L   int     `json:"l"`
	Ime int     `json:"ime"`
	RAM [][]int `json:"ram"`
}

type instructionTest struct {
	Name    string   `json:"name"`
	Initial cpuState `json:"initial"`
	Final   cpuState `json:"final"`
}

type instructionTests []*instructionTest

// Test_Instructions runs the single step tests from the sm83 test suite,
// when they have been checked out to sm83-test-data. HALT and STOP are
// skipped, as the suite expects them to wait on interrupts. EI takes
// effect immediately here, so its IME expectations differ.
func Test_Instructions(t *testing.T) {
	for i := 0; i < 256; i++ {
		switch uint8(i) {
		case 0x10, 0x76, 0xFB:
			continue
		case 0xCB:
			for j := 0; j < 256; j++ {
				runInstructionTest(t, fmt.Sprintf("cb %02x", j))
			}
			continue
		}
		runInstructionTest(t, fmt.Sprintf("%02x", i))
	}
}

func runInstructionTest(t *testing.T, name string) {
	file := fmt.Sprintf("sm83-test-data/v1/%s.json", name)
	// skip if no file
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return
	}
	t.Run(name, func(t *testing.T) {
		t.Parallel()

		tests, err := loadInstructionTests(file)
		if err != nil {
			t.Fatal(err)
		}
		for _, xTest := range tests {
			mem := ram.NewRAM()
			for _, row := range xTest.Initial.RAM {
				mem.WriteByte(uint16(row[0]), uint8(row[1]))
			}
			in := xTest.Initial
			c := New(mem, WithRegisters(RegisterFile{
				A: uint8(in.A), F: uint8(in.F),
				B: uint8(in.B), C: uint8(in.C),
				D: uint8(in.D), E: uint8(in.E),
				H: uint8(in.H), L: uint8(in.L),
				SP: uint16(in.Sp), PC: uint16(in.Pc),
			}))
			c.SetIME(in.Ime != 0)

			if _, err := c.Step(); err != nil {
				t.Errorf("%s: %v", xTest.Name, err)
				continue
			}

			out := xTest.Final
			want := RegisterFile{
				A: uint8(out.A), F: uint8(out.F),
				B: uint8(out.B), C: uint8(out.C),
				D: uint8(out.D), E: uint8(out.E),
				H: uint8(out.H), L: uint8(out.L),
				SP: uint16(out.Sp), PC: uint16(out.Pc),
			}
			if got := c.Registers(); got != want {
				t.Errorf("%s:\n got %s\nwant %s", xTest.Name, got, want)
			}
			if c.IME() != (out.Ime != 0) {
				t.Errorf("%s: IME expecting %d, was %t", xTest.Name, out.Ime, c.IME())
			}
			for _, row := range out.RAM {
				if v := mem.ReadByte(uint16(row[0])); v != uint8(row[1]) {
					t.Errorf("%s: RAM expecting %02x at %04x, was %02x", xTest.Name, row[1], row[0], v)
				}
			}
		}
	})
}

func loadInstructionTests(jsonFile string) (instructionTests, error) {
	f, err := os.Open(jsonFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t instructionTests
	if err := json.NewDecoder(f).Decode(&t); err != nil {
		return nil, err
	}

	return t, nil
}
