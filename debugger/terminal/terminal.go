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

package terminal

import (
	"os"
)

// sentinal errors. returned by TermRead() if caught whilst waiting for
// input.
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// ReadEvents should be monitored during a TermRead() where the
// implementation allows it.
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// handler for interrupt signals. the error returned by the handler is
	// returned by TermRead()
	SignalHandler func(os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line
	// terminator.
	//
	// If possible the TermRead() implementation should regularly check the
	// ReadEvents channels for activity. Not all implementations will be
	// able to do so because of the context in which they operate.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// TermReadCheck() returns true if there is input to be read. Not all
	// implementations will be able to return anything meaningful in which
	// case a return value of false is fine.
	TermReadCheck() bool

	// IsInteractive() should return true for implementations that expect
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for
	// example, to make sure the terminal is returned to canonical mode.
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// Not all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all input and output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
