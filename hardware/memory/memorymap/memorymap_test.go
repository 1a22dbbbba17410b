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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

func TestMapAddress(t *testing.T) {
	var ma uint16
	var area memorymap.Area

	ma, area = memorymap.MapAddress(0x0000)
	test.Equate(t, ma, uint16(0x0000))
	test.Equate(t, area, memorymap.ROM)

	ma, area = memorymap.MapAddress(0x7fff)
	test.Equate(t, ma, uint16(0x7fff))
	test.Equate(t, area, memorymap.ROM)

	ma, area = memorymap.MapAddress(0xc000)
	test.Equate(t, ma, uint16(0xc000))
	test.Equate(t, area, memorymap.WRAM)

	// mirror addresses normalise to the primary work RAM range
	ma, area = memorymap.MapAddress(0xe000)
	test.Equate(t, ma, uint16(0xc000))
	test.Equate(t, area, memorymap.WRAM)

	ma, area = memorymap.MapAddress(0xfdff)
	test.Equate(t, ma, uint16(0xddff))
	test.Equate(t, area, memorymap.WRAM)

	// first address past the mirror is unmapped (OAM on the real machine)
	_, area = memorymap.MapAddress(0xfe00)
	test.Equate(t, area, memorymap.Undefined)

	ma, area = memorymap.MapAddress(0xff80)
	test.Equate(t, ma, uint16(0xff80))
	test.Equate(t, area, memorymap.HRAM)

	_, area = memorymap.MapAddress(0xffff)
	test.Equate(t, area, memorymap.InterruptEnable)

	_, area = memorymap.MapAddress(0xff0f)
	test.Equate(t, area, memorymap.InterruptFlag)

	// unmapped examples: VRAM, cartridge RAM, the IO page, the byte below
	// HRAM
	for _, address := range []uint16{0x8000, 0x9fff, 0xa000, 0xbfff, 0xff00, 0xff7f} {
		_, area = memorymap.MapAddress(address)
		test.Equate(t, area, memorymap.Undefined)
	}
}

func TestSummary(t *testing.T) {
	test.Equate(t, memorymap.Summary(0xe005), "0xe005 -> 0xc005 (WRAM)")
	test.Equate(t, memorymap.Summary(0x0100), "0x0100 (ROM)")
	test.Equate(t, memorymap.Summary(0xff44), "0xff44 (undefined)")
}
