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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/test"
)

func newTestMemory(t *testing.T) *memory.Memory {
	t.Helper()
	image := make([]uint8, 0x8000)
	for i := range image {
		image[i] = uint8(i)
	}
	mem, err := memory.NewMemory(image)
	if err != nil {
		t.Fatal(err)
	}
	return mem
}

func TestROM(t *testing.T) {
	mem := newTestMemory(t)

	test.Equate(t, mem.ReadByte(0x0000), uint8(0x00))
	test.Equate(t, mem.ReadByte(0x0100), uint8(0x00))
	test.Equate(t, mem.ReadByte(0x0101), uint8(0x01))
	test.Equate(t, mem.ReadByte(0x7fff), uint8(0xff))

	// writes to ROM are dropped
	mem.WriteByte(0x0100, 0xaa)
	test.Equate(t, mem.ReadByte(0x0100), uint8(0x00))
}

func TestWRAMMirror(t *testing.T) {
	mem := newTestMemory(t)

	// a write through the primary range is visible through the mirror
	mem.WriteByte(0xc005, 0x7a)
	test.Equate(t, mem.ReadByte(0xc005), uint8(0x7a))
	test.Equate(t, mem.ReadByte(0xe005), uint8(0x7a))

	// and the other way around
	mem.WriteByte(0xfdff, 0x21)
	test.Equate(t, mem.ReadByte(0xddff), uint8(0x21))

	// mirror aliasing is not a copy. overwriting through one range is
	// immediately visible through the other
	mem.WriteByte(0xe005, 0x55)
	test.Equate(t, mem.ReadByte(0xc005), uint8(0x55))
}

func TestUnmapped(t *testing.T) {
	mem := newTestMemory(t)

	// VRAM, cartridge RAM, OAM and most of the IO page are not emulated
	test.Equate(t, mem.ReadByte(0x8000), uint8(0xff))
	test.Equate(t, mem.ReadByte(0xa000), uint8(0xff))
	test.Equate(t, mem.ReadByte(0xfe00), uint8(0xff))
	test.Equate(t, mem.ReadByte(0xff44), uint8(0xff))

	// writes to unmapped addresses are dropped without disturbing anything
	mem.WriteByte(0xff44, 0x12)
	test.Equate(t, mem.ReadByte(0xff44), uint8(0xff))
}

func TestHRAM(t *testing.T) {
	mem := newTestMemory(t)

	mem.WriteByte(0xff80, 0x01)
	mem.WriteByte(0xfffe, 0xfe)
	test.Equate(t, mem.ReadByte(0xff80), uint8(0x01))
	test.Equate(t, mem.ReadByte(0xfffe), uint8(0xfe))
}

func TestInterruptRegisters(t *testing.T) {
	mem := newTestMemory(t)

	test.Equate(t, mem.ReadByte(0xffff), uint8(0x00))
	test.Equate(t, mem.ReadByte(0xff0f), uint8(0x00))

	mem.WriteByte(0xffff, 0x1f)
	mem.WriteByte(0xff0f, 0x01)
	test.Equate(t, mem.ReadByte(0xffff), uint8(0x1f))
	test.Equate(t, mem.ReadByte(0xff0f), uint8(0x01))
	test.Equate(t, mem.Interrupts.Pending(), true)

	mem.Reset()
	test.Equate(t, mem.Interrupts.Pending(), false)
}

func TestShortImageRejected(t *testing.T) {
	_, err := memory.NewMemory(make([]uint8, 0x4000))
	if err == nil {
		t.Fatal("expected error for image shorter than the ROM area")
	}
}
