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

// Package debugger is a terminal based debugging frontend for the
// emulation. It steps at instruction granularity and provides commands for
// inspecting registers and memory, disassembling, tracing, requesting
// interrupts and waking the CPU from its low power states.
//
// The terminal implementation is chosen by the caller: plainterm for dumb
// input and output streams, colorterm for an interactive ANSI terminal.
package debugger
