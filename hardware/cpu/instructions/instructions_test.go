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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/test"
)

func TestDefinitions(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.Equate(t, len(defns), 256)

	// every entry is indexed by its own opcode
	for i, defn := range defns {
		if defn == nil {
			continue
		}
		test.Equate(t, int(defn.OpCode), i)
	}

	// spot checks on the regular blocks
	test.Equate(t, defns[0x06].Mnemonic, "LD B,n")
	test.Equate(t, defns[0x06].Bytes, 2)
	test.Equate(t, defns[0x36].Mnemonic, "LD (HL),n")
	test.Equate(t, defns[0x3c].Mnemonic, "INC A")
	test.Equate(t, defns[0x35].Mnemonic, "DEC (HL)")
	test.Equate(t, defns[0x41].Mnemonic, "LD B,C")
	test.Equate(t, defns[0x7e].Mnemonic, "LD A,(HL)")
	test.Equate(t, defns[0x86].Mnemonic, "ADD A,(HL)")
	test.Equate(t, defns[0x9f].Mnemonic, "SBC A,A")
	test.Equate(t, defns[0xbe].Mnemonic, "CP (HL)")
	test.Equate(t, defns[0xfe].Mnemonic, "CP n")
	test.Equate(t, defns[0x31].Mnemonic, "LD SP,nn")
	test.Equate(t, defns[0x31].Bytes, 3)
	test.Equate(t, defns[0x22].Mnemonic, "LD (HL+),A")
	test.Equate(t, defns[0x3a].Mnemonic, "LD A,(HL-)")

	// HALT sits in the hole of the register to register load block
	test.Equate(t, defns[0x76].Operator, instructions.Halt)

	// conditional jumps are two bytes regardless of condition
	test.Equate(t, defns[0x18].Bytes, 2)
	test.Equate(t, defns[0x20].Bytes, 2)
	test.Equate(t, defns[0x20].Mnemonic, "JR NZ,n")

	// a small sample of opcodes outside the implemented set
	for _, opcode := range []uint8{0xcb, 0xc5, 0xcd, 0xc9, 0xff, 0xd3} {
		if defns[opcode] != nil {
			t.Errorf("opcode %#02x should not be defined (%s)", opcode, defns[opcode].Mnemonic)
		}
	}
}
