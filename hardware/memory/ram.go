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

package memory

// RAM represents an area of random access memory. It is used for both the
// work RAM and the high RAM; the two instances differ only in origin and
// size. Addresses passed to Read and Write must already be normalised by
// memorymap.MapAddress() and fall within the instance's range.
type RAM struct {
	label  string
	origin uint16
	memtop uint16
	data   []uint8
}

func newRAM(label string, origin uint16, memtop uint16) *RAM {
	r := &RAM{
		label:  label,
		origin: origin,
		memtop: memtop,
	}
	r.data = make([]uint8, int(memtop)-int(origin)+1)
	return r
}

func (r RAM) String() string {
	return r.label
}

// Read a value from the address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address-r.origin]
}

// Write a value to the address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address-r.origin] = value
}

// Reset contents of RAM. The DMG does not clear RAM on reset but zeroed
// memory makes for reproducible tests and regression entries.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0x00
	}
}
