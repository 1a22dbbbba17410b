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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
)

// mockMem is a minimal implementation of the cpubus.Memory interface: every
// address reads and writes like RAM, with unwritten addresses reading as
// zero. Tests that care about the real address map live in the memory
// package.
type mockMem struct {
	internal map[uint16]uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make(map[uint16]uint8)}
}

func (mem *mockMem) ReadByte(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) WriteByte(address uint16, value uint8) {
	mem.internal[address] = value
}

// putInstructions writes a sequence of bytes to memory, returning the
// address immediately after the sequence.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.WriteByte(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

// step the CPU over one instruction, failing the test on any error.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatal(err)
	}
}
