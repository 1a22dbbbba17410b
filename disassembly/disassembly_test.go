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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/test"
)

func TestDecode(t *testing.T) {
	program := []uint8{
		0x3e, 0x42, // LD A,$42
		0x06, 0x10, // LD B,$10
		0x21, 0x00, 0xc0, // LD HL,$c000
		0x18, 0xfe, // JR to itself
		0xcb, // not in the implemented set
		0x76, // HALT
	}

	read := func(address uint16) uint8 {
		return program[address-0x0100]
	}

	entries := disassembly.Decode(read, 0x0100, 6)
	test.Equate(t, len(entries), 6)

	test.Equate(t, entries[0].String(), "0x0100  3e 42     LD A,$42")
	test.Equate(t, entries[1].Operator, "LD B,$10")
	test.Equate(t, entries[2].Operator, "LD HL,$c000")
	test.Equate(t, entries[2].Address, uint16(0x0104))

	// the jump target is the address of the JR instruction itself
	test.Equate(t, entries[3].Operator, "JR $0107")

	test.Equate(t, entries[4].Operator, ".byte $cb")
	test.Equate(t, entries[5].Operator, "HALT")
	test.Equate(t, entries[5].Address, uint16(0x010a))
}
