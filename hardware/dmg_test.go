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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/test"
)

func newTestDMG(t *testing.T, program ...uint8) *hardware.DMG {
	t.Helper()

	image := make([]uint8, 0x8000)
	copy(image[0x0100:], program)

	cartload := cartridgeloader.Loader{Filename: "test", Data: image}
	dmg, err := hardware.NewDMG(cartload)
	if err != nil {
		t.Fatal(err)
	}
	return dmg
}

func TestRunUntilStop(t *testing.T) {
	// LD A,0x42 ; LDH (0x80),A ; STOP
	dmg := newTestDMG(t, 0x3e, 0x42, 0xe0, 0x80, 0x10)

	instructions := 0
	err := dmg.Run(func() (govern.State, error) {
		instructions++
		if dmg.CPU.State == cpu.Stopped {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	test.Equate(t, instructions, 3)
	test.Equate(t, dmg.Mem.ReadByte(0xff80), 0x42)
}

func TestReset(t *testing.T) {
	dmg := newTestDMG(t, 0x3e, 0x99, 0xc3, 0x00, 0x02)

	if err := dmg.Step(); err != nil {
		t.Fatal(err)
	}
	if err := dmg.Step(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dmg.CPU.PC.Address(), uint16(0x0200))

	dmg.Reset()
	test.Equate(t, dmg.CPU.PC.Address(), uint16(0x0100))
	test.Equate(t, dmg.CPU.A.Value(), uint8(0x01))
}
