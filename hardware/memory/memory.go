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
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// Memory is the monolithic representation of the address space. It
// implements the cpubus.Memory interface and is the only implementation used
// by the emulation itself (tests use their own stubs).
type Memory struct {
	ROM        *ROM
	WRAM       *RAM
	HRAM       *RAM
	Interrupts Interrupts
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The data argument is the cartridge image, which must span the whole of the
// mapped ROM area. The cartridgeloader package guarantees this for images
// loaded from disk.
func NewMemory(data []uint8) (*Memory, error) {
	rom, err := newROM(data)
	if err != nil {
		return nil, err
	}

	return &Memory{
		ROM:  rom,
		WRAM: newRAM("WRAM", memorymap.OriginWRAM, memorymap.MemtopWRAM),
		HRAM: newRAM("HRAM", memorymap.OriginHRAM, memorymap.MemtopHRAM),
	}, nil
}

// Reset contents of memory. The ROM image is untouched.
func (mem *Memory) Reset() {
	mem.WRAM.Reset()
	mem.HRAM.Reset()
	mem.Interrupts.Reset()
}

// ReadByte is an implementation of the cpubus.Memory interface. Reads from
// unmapped addresses return 0xff, which is what the data bus floats to on
// the real machine.
func (mem *Memory) ReadByte(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		return mem.ROM.Read(ma)
	case memorymap.WRAM:
		return mem.WRAM.Read(ma)
	case memorymap.HRAM:
		return mem.HRAM.Read(ma)
	case memorymap.InterruptEnable:
		return mem.Interrupts.IE
	case memorymap.InterruptFlag:
		return mem.Interrupts.IF
	}

	logger.Log("memory", fmt.Sprintf("read from unmapped address %s", memorymap.Summary(address)))
	return 0xff
}

// WriteByte is an implementation of the cpubus.Memory interface. Writes to
// the ROM area and to unmapped addresses are dropped.
func (mem *Memory) WriteByte(address uint16, value uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		logger.Log("memory", fmt.Sprintf("write of %#02x to read-only address %s", value, memorymap.Summary(address)))
	case memorymap.WRAM:
		mem.WRAM.Write(ma, value)
	case memorymap.HRAM:
		mem.HRAM.Write(ma, value)
	case memorymap.InterruptEnable:
		mem.Interrupts.IE = value
	case memorymap.InterruptFlag:
		mem.Interrupts.IF = value
	default:
		logger.Log("memory", fmt.Sprintf("write of %#02x to unmapped address %s", value, memorymap.Summary(address)))
	}
}
