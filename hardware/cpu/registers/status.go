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

import "strings"

// StatusRegister is the F register of the LR35902. The flags are stored as
// individual bool fields; Value() and FromValue() translate to and from the
// packed byte representation. The lower nibble of the packed byte is always
// zero, whatever has been loaded into the register.
type StatusRegister struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// NewStatusRegister is the preferred method of initialisation for the
// StatusRegister type.
func NewStatusRegister(val uint8) StatusRegister {
	sr := StatusRegister{}
	sr.FromValue(val)
	return sr
}

// String returns the status flags as a compact string. An upper-case letter
// means the flag is set, lower-case means unset.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	if sr.Zero {
		s.WriteString("Z")
	} else {
		s.WriteString("z")
	}
	if sr.Subtract {
		s.WriteString("N")
	} else {
		s.WriteString("n")
	}
	if sr.HalfCarry {
		s.WriteString("H")
	} else {
		s.WriteString("h")
	}
	if sr.Carry {
		s.WriteString("C")
	} else {
		s.WriteString("c")
	}
	return s.String()
}

// Label returns the label assigned to the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

// Value returns the status register as a packed byte. Flags occupy the
// upper nibble, bit 7 downwards: zero, subtract, half-carry, carry. The
// lower nibble is always zero.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	if sr.Zero {
		v |= 0x80
	}
	if sr.Subtract {
		v |= 0x40
	}
	if sr.HalfCarry {
		v |= 0x20
	}
	if sr.Carry {
		v |= 0x10
	}
	return v
}

// FromValue sets the flags according to the packed byte representation. The
// lower nibble of the argument is discarded.
func (sr *StatusRegister) FromValue(val uint8) {
	sr.Zero = val&0x80 == 0x80
	sr.Subtract = val&0x40 == 0x40
	sr.HalfCarry = val&0x20 == 0x20
	sr.Carry = val&0x10 == 0x10
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0x00)
}
