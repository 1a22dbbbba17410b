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

// Package cpu implements the Sharp LR35902, the processor found in the
// original DMG model Game Boy. The CPU operates at the granularity of
// whole instructions: ExecuteInstruction() fetches, decodes and executes
// one instruction per call and records what it did in the LastResult
// field. Sub-instruction cycle timing is not modelled.
//
// Memory is reached through the cpubus.Memory interface supplied to
// NewCPU(). The CPU itself holds no memory; even the IE and IF interrupt
// registers are read through the bus when the halted state is reassessed.
//
// The implemented instruction set covers the 8 bit loads and arithmetic,
// the 16 bit loads and arithmetic, the accumulator rotates, DAA and the
// other flag instructions, relative and absolute jumps, and the HALT and
// STOP power states. See the instructions package for the exact list. How
// the CPU reacts to an opcode outside that set depends on the Strict
// field: an error in strict mode, a logged no-op otherwise.
package cpu
