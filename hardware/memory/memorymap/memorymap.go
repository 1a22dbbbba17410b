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

package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case WRAM:
		return "WRAM"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "IE"
	case InterruptFlag:
		return "IF"
	}

	return "undefined"
}

// The different memory areas in the DMG.
const (
	Undefined Area = iota
	ROM
	WRAM
	HRAM
	InterruptEnable
	InterruptFlag
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and normalising mirror addresses into the primary
// range is all handled by the MapAddress() function.
const (
	OriginROM        = uint16(0x0000)
	MemtopROM        = uint16(0x7fff)
	OriginWRAM       = uint16(0xc000)
	MemtopWRAM       = uint16(0xdfff)
	OriginWRAMMirror = uint16(0xe000)
	MemtopWRAMMirror = uint16(0xfdff)
	OriginHRAM       = uint16(0xff80)
	MemtopHRAM       = uint16(0xfffe)
	AddressIE        = uint16(0xffff)
	AddressIF        = uint16(0xff0f)
)

// MirrorShift is the distance between a work RAM address and its echo in the
// mirror area. Subtracting it from a mirror address gives the primary
// address of the same storage cell.
const MirrorShift = OriginWRAMMirror - OriginWRAM

// MapAddress translates the address argument to the primary address of the
// area it falls within, and identifies the area. Mirror addresses in the
// echo area are normalised to the primary work RAM range; every other
// address maps to itself.
//
// An Area of Undefined means the address is unmapped. The memory package
// treats reads from unmapped addresses as returning 0xff and drops writes,
// per the hardware's observed behaviour.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address >= OriginWRAM && address <= MemtopWRAM:
		return address, WRAM
	case address >= OriginWRAMMirror && address <= MemtopWRAMMirror:
		return address - MirrorShift, WRAM
	case address >= OriginHRAM && address <= MemtopHRAM:
		return address, HRAM
	case address == AddressIE:
		return address, InterruptEnable
	case address == AddressIF:
		return address, InterruptFlag
	}

	return address, Undefined
}

// Summary returns a single line description of an address.
func Summary(address uint16) string {
	ma, area := MapAddress(address)
	if ma != address {
		return fmt.Sprintf("%#04x -> %#04x (%s)", address, ma, area)
	}
	return fmt.Sprintf("%#04x (%s)", address, area)
}
