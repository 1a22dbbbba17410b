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

package registers

import "fmt"

// Pair is a 16 bit view onto two 8 bit registers. BC, DE and HL are pairs.
// A pair has no storage of its own: loading a pair loads the two registers
// it is composed of, and the pair's value is always composed afresh from
// those registers.
type Pair struct {
	label string
	hi    *Register
	lo    *Register
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(hi *Register, lo *Register, label string) Pair {
	return Pair{label: label, hi: hi, lo: lo}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.Address())
}

// Label returns the label assigned to the pair.
func (p Pair) Label() string {
	return p.label
}

// Address returns the 16 bit value of the pair, high register in the upper
// byte. The name reflects what the value almost always is: an address.
func (p Pair) Address() uint16 {
	return uint16(p.hi.Value())<<8 | uint16(p.lo.Value())
}

// Load value into the pair. The upper byte goes to the high register and
// the lower byte to the low register.
func (p *Pair) Load(val uint16) {
	p.hi.Load(uint8(val >> 8))
	p.lo.Load(uint8(val))
}

// Increment the pair by one, wrapping at the 16 bit boundary. The 16 bit
// increment affects no status flags.
func (p *Pair) Increment() {
	p.Load(p.Address() + 1)
}

// Decrement the pair by one, wrapping at the 16 bit boundary. The 16 bit
// decrement affects no status flags.
func (p *Pair) Decrement() {
	p.Load(p.Address() - 1)
}

// Add value to the pair. Returns carry out of bit 15 and carry out of bit
// 11, for the ADD HL instruction.
func (p *Pair) Add(val uint16) (bool, bool) {
	v := uint32(p.Address()) + uint32(val)
	h := p.Address()&0x0fff + val&0x0fff
	p.Load(uint16(v))
	return v > 0xffff, h > 0x0fff
}
