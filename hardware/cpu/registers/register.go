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

// Register is an 8 bit register in the LR35902. Arithmetic on registers
// wraps at the 8 bit boundary; the arithmetic functions report the carry
// and half-carry information the CPU needs to build the status register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{label: label, value: val}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the label assigned to the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero returns true if the register value is zero.
func (r Register) IsZero() bool {
	return r.value == 0x00
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and half-carry states. The carry
// argument is the state of the carry flag before the addition, for the ADC
// instruction; pass false for plain ADD.
func (r *Register) Add(val uint8, carry bool) (bool, bool) {
	v := uint16(r.value) + uint16(val)
	h := r.value&0x0f + val&0x0f
	if carry {
		v++
		h++
	}
	r.value = uint8(v)
	return v > 0xff, h > 0x0f
}

// Subtract value from register. Returns borrow and half-borrow states. The
// carry argument is the state of the carry flag before the subtraction, for
// the SBC instruction; pass false for plain SUB.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	v := int(r.value) - int(val)
	h := int(r.value&0x0f) - int(val&0x0f)
	if carry {
		v--
		h--
	}
	r.value = uint8(v)
	return v < 0, h < 0
}

// Increment the register by one. Returns the half-carry state. There is no
// carry state for the 8 bit increment instruction.
func (r *Register) Increment() bool {
	h := r.value&0x0f == 0x0f
	r.value++
	return h
}

// Decrement the register by one. Returns the half-borrow state. There is no
// borrow state for the 8 bit decrement instruction.
func (r *Register) Decrement() bool {
	h := r.value&0x0f == 0x00
	r.value--
	return h
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}
