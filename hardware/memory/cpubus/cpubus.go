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

// Package cpubus defines the memory bus as the CPU sees it.
//
// The bus is total: every address produces a value on read and accepts a
// value on write. There is no error path. Reads from unmapped addresses
// return 0xff and writes to unmapped or read-only addresses are dropped;
// the memory implementation notes such accesses through the logger so
// they remain visible during debugging.
package cpubus

// Memory defines the operations for the memory system as required by the CPU.
type Memory interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
}
