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

import (
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// sentinal error pattern for ROM attachment problems.
const ImageError = "rom: %v"

// ROM is the cartridge image flat-mapped into the bottom half of the address
// space. There is no bank switching; the image must span the whole area.
type ROM struct {
	data []uint8
}

func newROM(data []uint8) (*ROM, error) {
	if len(data) < int(memorymap.MemtopROM)+1 {
		return nil, curated.Errorf(ImageError, "image shorter than mapped ROM area")
	}
	return &ROM{data: data}, nil
}

func (r ROM) String() string {
	return "ROM"
}

// Read a value from the address.
func (r *ROM) Read(address uint16) uint8 {
	return r.data[address]
}
