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

// Package cartridgeloader is used to specify the cartridge to load into the
// emulated machine. The Loader type records the filename of the ROM image
// and, once loaded, a copy of the data and the hash of the file.
//
// There is no header validation and no mapper fingerprinting: the data is
// flat-mapped into the ROM area of the address space exactly as it appears
// in the file. The loader is where the "image spans at least 0x8000 bytes"
// precondition of the memory package is enforced, by padding short images.
package cartridgeloader
