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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
)

// sentinal error pattern for all performance errors.
const PerformanceError = "performance: %v"

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu
// and/or memory profile as defined by the Profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, duration string) error {
	dmg, err := hardware.NewDMG(cartload)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	instructions := 0

	runner := func() error {
		// expires when the measurement period has elapsed
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		start := time.Now()

		// only check for the end of the measurement period every
		// PerformanceBrake instructions. checking the channel is
		// relatively expensive
		performanceBrake := 0

		err := dmg.Run(func() (govern.State, error) {
			instructions++

			// a CPU that has suspended itself will never produce useful
			// numbers, end the measurement early
			if dmg.CPU.State != cpu.Running {
				return govern.Ending, nil
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timerChan:
					return govern.Ending, nil
				default:
				}
			}

			return govern.Running, nil
		})
		if err != nil {
			return err
		}

		elapsed := time.Since(start).Seconds()
		if elapsed > 0 {
			fmt.Fprintf(output, "%d instructions in %.2fs; %.2f million instructions per second\n",
				instructions, elapsed, float64(instructions)/elapsed/1e6)
		}

		return nil
	}

	return RunProfiler(profile, "gopherboy", runner)
}
