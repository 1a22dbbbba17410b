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

// Package disassembly turns a cartridge image into a listing of LR35902
// instructions. The sweep is linear rather than flow-following, so data
// embedded in the code will decode to nonsense instructions or .byte
// directives. For the purposes of eyeballing a ROM that is usually good
// enough.
//
// The Decode() function is also used by the debugger to show the
// instructions around the current program counter.
package disassembly
