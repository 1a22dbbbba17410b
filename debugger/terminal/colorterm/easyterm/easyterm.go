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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// termios methods in functions with friendlier names and keeps hold of the
// attribute sets for the two modes the debugger switches between.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the base type for the terminal. Embed it into the terminal
// implementation to inherit the mode switching functions.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the EasyTerm instance. The attribute set in place at this
// point is the one restored by CanonicalMode() and CleanUp().
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	et.input = input
	et.output = output

	if err := termios.Tcgetattr(input.Fd(), &et.canAttr); err != nil {
		return err
	}

	// raw-ish mode: no line buffering and no echo but output processing
	// left alone so newlines behave
	et.rawAttr = et.canAttr
	et.rawAttr.Lflag &^= unix.ICANON | unix.ECHO
	et.rawAttr.Cc[unix.VMIN] = 1
	et.rawAttr.Cc[unix.VTIME] = 0

	return nil
}

// CleanUp returns the terminal to the state it was in at initialisation.
func (et *EasyTerm) CleanUp() {
	_ = et.CanonicalMode()
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.rawAttr)
}

// CanonicalMode puts terminal into canonical mode.
func (et *EasyTerm) CanonicalMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.canAttr)
}

// TermPrint writes a string to the terminal output.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}
