// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/debugger/terminal"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/test"
)

// mockTerm implements the terminal.Terminal interface and collects
// everything printed to it.
type mockTerm struct {
	output []string
}

func (trm *mockTerm) Initialise() error                              { return nil }
func (trm *mockTerm) CleanUp()                                       {}
func (trm *mockTerm) RegisterTabCompletion(terminal.TabCompletion)   {}
func (trm *mockTerm) Silence(bool)                                   {}
func (trm *mockTerm) TermReadCheck() bool                            { return false }
func (trm *mockTerm) IsInteractive() bool                            { return false }
func (trm *mockTerm) TermRead(terminal.Prompt, *terminal.ReadEvents) (string, error) {
	return "", nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

func newTestDebugger(t *testing.T, program ...uint8) (*Debugger, *mockTerm) {
	t.Helper()

	image := make([]uint8, 0x8000)
	copy(image[0x0100:], program)

	dmg, err := hardware.NewDMG(cartridgeloader.Loader{Filename: "test", Data: image})
	if err != nil {
		t.Fatal(err)
	}

	trm := &mockTerm{}
	return NewDebugger(dmg, trm), trm
}

func TestStepCommand(t *testing.T) {
	// LD A,0x42 ; LDH (0x80),A
	dbg, trm := newTestDebugger(t, 0x3e, 0x42, 0xe0, 0x80)

	if err := dbg.parseInput("STEP"); err != nil {
		t.Fatal(err)
	}
	if !trm.contains("LD A,$42") {
		t.Error("expected trace of LD A,$42 in terminal output")
	}

	if err := dbg.parseInput("step"); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dbg.dmg.Mem.ReadByte(0xff80), 0x42)
	test.Equate(t, dbg.dmg.CPU.PC.Address(), uint16(0x0104))
}

func TestRegistersCommand(t *testing.T) {
	dbg, trm := newTestDebugger(t)

	if err := dbg.parseInput("REGISTERS"); err != nil {
		t.Fatal(err)
	}
	if !trm.contains("PC=0x0100") {
		t.Error("expected program counter in REGISTERS output")
	}
	if !trm.contains("IME=false") {
		t.Error("expected interrupt state in REGISTERS output")
	}
}

func TestMemoryCommand(t *testing.T) {
	dbg, trm := newTestDebugger(t)
	dbg.dmg.Mem.WriteByte(0xc000, 0xab)

	if err := dbg.parseInput("MEMORY 0xc000 16"); err != nil {
		t.Fatal(err)
	}
	if !trm.contains("ab") {
		t.Error("expected written byte in MEMORY output")
	}

	// bad address is reported as an error
	if err := dbg.parseInput("MEMORY xyz"); err == nil {
		t.Error("expected error for bad address")
	}
}

func TestPokeCommand(t *testing.T) {
	dbg, _ := newTestDebugger(t)

	if err := dbg.parseInput("POKE 0xff80 5a"); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dbg.dmg.Mem.ReadByte(0xff80), 0x5a)

	if err := dbg.parseInput("POKE 0xff80"); err == nil {
		t.Error("expected error for missing value")
	}
}

func TestInterruptAndWake(t *testing.T) {
	// EI ; HALT
	dbg, _ := newTestDebugger(t, 0xfb, 0x76)

	if err := dbg.parseInput("STEP 2"); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dbg.dmg.CPU.State.String(), "halted")

	// an interrupt request alone does not wake the CPU, it must be enabled
	// as well
	dbg.dmg.Mem.WriteByte(0xffff, 0x01)
	if err := dbg.parseInput("INTERRUPT 0"); err != nil {
		t.Fatal(err)
	}
	if err := dbg.parseInput("STEP"); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dbg.dmg.CPU.State.String(), "running")
}

func TestUnknownCommand(t *testing.T) {
	dbg, _ := newTestDebugger(t)
	if err := dbg.parseInput("FLY"); err == nil {
		t.Error("expected error for unknown command")
	}
}
