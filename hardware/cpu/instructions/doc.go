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

// Package instructions defines the shape of every implemented instruction
// of the LR35902. The CPU and disassembly packages both drive themselves
// from the table returned by GetDefinitions().
//
// The opcode layout of the LR35902 is very regular: operands are encoded in
// fixed bit positions of the opcode byte. The Operand type follows that
// encoding directly, which is why most of the table can be built with loops
// rather than being written out entry by entry.
//
// The CB-prefixed page of bit operations is not part of the implemented
// set. Nor are the stack instructions (CALL, RET, PUSH, POP, RST) or the
// interrupt dispatch sequence. Opcodes outside the implemented set have nil
// entries in the table.
package instructions
