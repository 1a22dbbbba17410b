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

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/debugger/terminal"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
)

// sentinal error pattern for all debugger errors.
const DebuggerError = "debugger: %v"

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	dmg  *hardware.DMG
	term terminal.Terminal

	events *terminal.ReadEvents

	// the debugger's main loop runs until this is false
	running bool

	// print every instruction as it is executed
	trace bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(dmg *hardware.DMG, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		dmg:  dmg,
		term: term,
	}

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)

	return dbg
}

// Start the main debugger loop, ending only when the user quits or an
// unrecoverable error occurs.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(&tabCompletion{})

	dbg.running = true
	for dbg.running {
		prompt := terminal.Prompt{
			Type:    terminal.PromptTypeStep,
			Content: fmt.Sprintf("%#04x", dbg.dmg.CPU.PC.Address()),
		}

		input, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "use QUIT to end the debugging session")
				continue
			}
			if curated.Is(err, terminal.UserQuit) || err == io.EOF {
				return nil
			}
			return err
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// step the emulation forward one instruction, printing the result.
func (dbg *Debugger) step() error {
	if err := dbg.dmg.Step(); err != nil {
		return err
	}

	if dbg.dmg.CPU.State != cpu.Running {
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("CPU is %s", dbg.dmg.CPU.State))
		return nil
	}

	dbg.term.TermPrintLine(terminal.StyleTrace, dbg.dmg.CPU.LastResult.String())
	return nil
}

// run the emulation until interrupted by the user or until the CPU is no
// longer running.
func (dbg *Debugger) run() error {
	dbg.term.TermPrintLine(terminal.StyleFeedback, "running. ctrl-c to interrupt")

	performanceFilter := 0
	err := dbg.dmg.Run(func() (govern.State, error) {
		if dbg.trace {
			dbg.term.TermPrintLine(terminal.StyleTrace, dbg.dmg.CPU.LastResult.String())
		}

		if dbg.dmg.CPU.State != cpu.Running {
			return govern.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.events.Signal:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	dbg.printState()
	return nil
}

func (dbg *Debugger) printState() {
	dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.dmg.CPU.String())
}
