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

package memory

// Interrupts groups the two interrupt registers that live in the address
// space. IE (0xffff) masks which interrupts are serviceable, IF (0xff0f)
// records which have been requested. The CPU consults both when deciding
// whether to leave the halted state.
type Interrupts struct {
	// interrupt enable register
	IE uint8

	// interrupt flag register
	IF uint8
}

// Pending returns true if any enabled interrupt has been requested. Only the
// five defined interrupt bits take part in the test.
func (ir Interrupts) Pending() bool {
	return ir.IE&ir.IF&0x1f != 0x00
}

// Reset the interrupt registers.
func (ir *Interrupts) Reset() {
	ir.IE = 0x00
	ir.IF = 0x00
}
