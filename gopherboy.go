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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/debugger"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/debugger/terminal"
	"github.com/jetsetilly/gopherboy/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherboy/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	strict := md.AddBool("strict", false, "treat unimplemented opcodes as an error")
	halt := md.AddBool("halt", true, "end the run when the CPU halts or stops")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		dmg, err := hardware.NewDMG(cartload)
		if err != nil {
			return err
		}
		dmg.CPU.Strict = *strict

		// ctrl-c to stop the emulation
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)

		performanceFilter := 0
		err = dmg.Run(func() (govern.State, error) {
			if *trace {
				fmt.Println(dmg.CPU.LastResult.String())
			}

			// there are no interrupt sources outside of the CPU in this mode
			// so a halted or stopped CPU will never resume
			if *halt && dmg.CPU.State != cpu.Running {
				return govern.Ending, nil
			}

			performanceFilter++
			if performanceFilter >= hardware.PerformanceBrake {
				performanceFilter = 0
				select {
				case <-intChan:
					return govern.Ending, nil
				default:
				}
			}

			return govern.Running, nil
		})
		if err != nil {
			return err
		}

		fmt.Println(dmg.CPU.String())
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	strict := md.AddBool("strict", false, "treat unimplemented opcodes as an error")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		dmg, err := hardware.NewDMG(cartload)
		if err != nil {
			return err
		}
		dmg.CPU.Strict = *strict

		dbg := debugger.NewDebugger(dmg, term)
		if err := dbg.Start(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromCartridge(cartload)
		if err != nil {
			return err
		}

		if err := dsm.Write(md.Output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run with profiler: NONE, CPU, MEM, ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		if err := performance.Check(md.Output, prf, cartload, *duration); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
