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

package hardware

import (
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/memory"
)

// DMG is the main container for the emulated components of the Game Boy.
type DMG struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewDMG creates a new DMG instance with the cartridge attached. It is used
// for all aspects of emulation: debugging sessions and regular play.
func NewDMG(cartload cartridgeloader.Loader) (*DMG, error) {
	data, err := cartload.Load()
	if err != nil {
		return nil, err
	}

	dmg := &DMG{}

	dmg.Mem, err = memory.NewMemory(data)
	if err != nil {
		return nil, err
	}

	dmg.CPU = cpu.NewCPU(dmg.Mem)

	return dmg, nil
}

// Reset the DMG to the state it is in after the boot ROM has handed over to
// the cartridge.
func (dmg *DMG) Reset() {
	dmg.Mem.Reset()
	dmg.CPU.Reset()
}

// Step the emulation forward by one instruction.
func (dmg *DMG) Step() error {
	return dmg.CPU.ExecuteInstruction()
}
