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
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// Profile is used to specify the type of profile to be generated.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString converts a string to a Profile value.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf(PerformanceError, "unrecognised profile type")
}

// RunProfiler runs the supplied function, optionally capturing a cpu
// profile of the run and a memory profile of its conclusion. Profile files
// are named after the supplied tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	err := cpuProfile(profile == ProfileCPU || profile == ProfileAll, tag+"_cpu.profile", run)
	if err != nil {
		return err
	}
	return memProfile(profile == ProfileMem || profile == ProfileAll, tag+"_mem.profile")
}

func cpuProfile(enabled bool, outFile string, run func() error) error {
	if enabled {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(enabled bool, outFile string) error {
	if enabled {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	return nil
}
