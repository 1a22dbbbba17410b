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

// StackPointer represents the SP register of the LR35902. Unlike BC, DE and
// HL it is a true 16 bit register, not a pair of 8 bit registers.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%#04x", sp.value)
}

// Label returns the label assigned to the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

// Address returns the current value of the stack pointer.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Increment the stack pointer by one, wrapping at the 16 bit boundary.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer by one, wrapping at the 16 bit boundary.
func (sp *StackPointer) Decrement() {
	sp.value--
}
