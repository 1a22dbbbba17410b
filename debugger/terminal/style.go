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

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function. Terminals with color support can use it
// to decorate the output.
type Style int

// List of terminal styles.
const (
	// the prompt for interactive input
	StylePromptStep Style = iota
	StylePromptConfirm

	// help text
	StyleHelp

	// terminal reaction to a command
	StyleFeedback

	// disassembly or execution trace line
	StyleTrace

	// entries from the log
	StyleLog

	// error messages. printed even when the terminal is silenced
	StyleError
)

// IsPrompt returns true if the style is one of the prompt styles.
func (sty Style) IsPrompt() bool {
	return sty == StylePromptStep || sty == StylePromptConfirm
}
