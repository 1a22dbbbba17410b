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
	"github.com/jetsetilly/gopherboy/debugger/govern"
)

// The continueCheck() function only runs at the end of a CPU instruction
// but it can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction; the loop ends when it returns
// anything other than govern.Running.
func (dmg *DMG) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	for {
		if err := dmg.CPU.ExecuteInstruction(); err != nil {
			return err
		}

		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state != govern.Running {
			return nil
		}
	}
}
