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

// Package memory implements the address space of the DMG as the CPU sees
// it: the cartridge ROM, work RAM with its echo area, high RAM, and the two
// interrupt registers. Address decoding is done with the memorymap package;
// access to storage is through the ReadByte() and WriteByte() functions of
// the Memory type, which satisfy the cpubus.Memory interface.
//
// Accesses to addresses that decode to nothing are not errors. Unmapped
// reads return 0xff and writes to unmapped or read-only addresses are
// dropped. Both are noted through the logger package so stray accesses show
// up when debugging.
package memory
