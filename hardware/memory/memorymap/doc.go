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

// Package memorymap holds the single authoritative description of the
// address space as seen by the CPU. Other packages (the debugger, the
// disassembler) that need to know what an address means should use
// MapAddress() rather than repeating the table.
//
//	0x0000 - 0x7fff    ROM image (read-only)
//	0xc000 - 0xdfff    work RAM (8k)
//	0xe000 - 0xfdff    work RAM mirror (echo of the above)
//	0xff80 - 0xfffe    high RAM (127 bytes)
//	0xffff             interrupt enable register
//	0xff0f             interrupt flag register
//
// The mirror is true aliasing, not a copy: MapAddress() normalises a mirror
// address to the primary work RAM address so both ranges address the same
// storage. Everything else is unmapped.
package memorymap
