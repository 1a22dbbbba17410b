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

// Package assert contains test assertions for the register types. Keeping
// these in their own package means test files read naturally:
//
//	assert.Assert(t, mc.A, 0x42)
//	assert.Assert(t, mc.Status, "ZnHc")
package assert

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
)

// Assert is used to test the value of a register against an expected value.
//
// An 8 bit register is compared against an int or uint8. The 16 bit types
// (Pair, ProgramCounter, StackPointer) are compared against an int or
// uint16. A StatusRegister is compared against a string of the form
// returned by its String() function, eg. "ZnhC", where an upper-case letter
// asserts the flag is set and a lower-case letter asserts it is unset.
func Assert(t *testing.T, reg, val interface{}) {
	t.Helper()

	switch r := reg.(type) {
	case registers.Register:
		switch v := val.(type) {
		case int:
			if r.Value() != uint8(v) {
				t.Errorf("register %s is %#02x (wanted %#02x)", r.Label(), r.Value(), uint8(v))
			}
		case uint8:
			if r.Value() != v {
				t.Errorf("register %s is %#02x (wanted %#02x)", r.Label(), r.Value(), v)
			}
		default:
			t.Fatalf("cannot compare register %s against type %T", r.Label(), val)
		}

	case registers.Pair:
		assert16(t, r.Label(), r.Address(), val)

	case registers.ProgramCounter:
		assert16(t, r.Label(), r.Address(), val)

	case registers.StackPointer:
		assert16(t, r.Label(), r.Address(), val)

	case registers.StatusRegister:
		switch v := val.(type) {
		case string:
			if r.String() != v {
				t.Errorf("status register is %s (wanted %s)", r.String(), v)
			}
		case int:
			if r.Value() != uint8(v) {
				t.Errorf("status register is %#02x (wanted %#02x)", r.Value(), uint8(v))
			}
		default:
			t.Fatalf("cannot compare status register against type %T", val)
		}

	default:
		t.Fatalf("unsupported register type (%T) for assertion", reg)
	}
}

func assert16(t *testing.T, label string, address uint16, val interface{}) {
	t.Helper()

	switch v := val.(type) {
	case int:
		if address != uint16(v) {
			t.Errorf("register %s is %#04x (wanted %#04x)", label, address, uint16(v))
		}
	case uint16:
		if address != v {
			t.Errorf("register %s is %#04x (wanted %#04x)", label, address, v)
		}
	default:
		t.Fatalf("cannot compare register %s against type %T", label, val)
	}
}
