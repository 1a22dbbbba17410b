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

// Package registers implements the registers of the LR35902.
//
// The 8 bit registers A, B, C, D, E, H and L are instances of the Register
// type. The paired views BC, DE and HL are instances of the Pair type,
// composed of pointers to the 8 bit registers so that writing through
// either view is immediately visible through the other.
//
// The F register is the StatusRegister type, which stores its flags as
// bools. The packed byte form, with the flags in the upper nibble and the
// lower nibble forced to zero, is available through Value() and
// FromValue().
//
// PC and SP are true 16 bit registers and have their own types.
package registers
