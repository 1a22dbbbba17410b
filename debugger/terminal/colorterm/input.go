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

package colorterm

import (
	"bufio"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/terminal"
	"github.com/jetsetilly/gopherboy/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopherboy/debugger/terminal/colorterm/easyterm/ansi"
)

type readResult struct {
	r   rune
	err error
}

// runeReader pumps runes from the input stream into a channel so TermRead
// can select on terminal input and debugger events at the same time.
type runeReader struct {
	runes chan readResult
}

func initRuneReader(input io.Reader) runeReader {
	rr := runeReader{runes: make(chan readResult, 16)}

	go func() {
		reader := bufio.NewReader(input)
		for {
			r, _, err := reader.ReadRune()
			rr.runes <- readResult{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}

func (ct *ColorTerminal) printPrompt(prompt terminal.Prompt, input []rune, cursor int) {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.ClearLine)
	ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	ct.EasyTerm.TermPrint(prompt.String())
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint(string(input))
	ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	input := make([]rune, 0, 255)
	cursor := 0

	// history index is one past the most recent entry, meaning the blank
	// line currently being edited
	history := len(ct.commandHistory)

	ct.printPrompt(prompt, input, cursor)

	for {
		select {
		case sig := <-events.Signal:
			if err := events.SignalHandler(sig); err != nil {
				return "", err
			}
			ct.printPrompt(prompt, input, cursor)

		case result := <-ct.reader.runes:
			if result.err != nil {
				return "", result.err
			}

			switch result.r {
			case easyterm.KeyCarriageReturn, '\n':
				ct.EasyTerm.TermPrint("\n")
				if len(input) > 0 {
					ct.commandHistory = append(ct.commandHistory, command{input: input})
				}
				if ct.tabCompletion != nil {
					ct.tabCompletion.Reset()
				}
				return string(input), nil

			case easyterm.KeyInterrupt:
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserInterrupt)

			case easyterm.KeyEndOfFile:
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserQuit)

			case easyterm.KeySuspend:
				_ = ct.EasyTerm.CanonicalMode()
				easyterm.SuspendProcess()
				_ = ct.EasyTerm.RawMode()
				ct.printPrompt(prompt, input, cursor)

			case easyterm.KeyTab:
				if ct.tabCompletion != nil {
					input = []rune(ct.tabCompletion.Complete(string(input)))
					cursor = len(input)
					ct.printPrompt(prompt, input, cursor)
				}

			case easyterm.KeyBackspace, easyterm.KeyDelete:
				if cursor > 0 {
					input = append(input[:cursor-1], input[cursor:]...)
					cursor--
					ct.printPrompt(prompt, input, cursor)
				}

			case easyterm.KeyEsc:
				next := <-ct.reader.runes
				if next.err != nil {
					return "", next.err
				}
				if next.r != easyterm.EscCursor {
					continue
				}

				next = <-ct.reader.runes
				if next.err != nil {
					return "", next.err
				}

				switch next.r {
				case easyterm.CursorUp:
					if history > 0 {
						history--
						input = append(input[:0], ct.commandHistory[history].input...)
						cursor = len(input)
						ct.printPrompt(prompt, input, cursor)
					}
				case easyterm.CursorDown:
					if history < len(ct.commandHistory)-1 {
						history++
						input = append(input[:0], ct.commandHistory[history].input...)
					} else {
						history = len(ct.commandHistory)
						input = input[:0]
					}
					cursor = len(input)
					ct.printPrompt(prompt, input, cursor)
				case easyterm.CursorForward:
					if cursor < len(input) {
						cursor++
						ct.printPrompt(prompt, input, cursor)
					}
				case easyterm.CursorBackward:
					if cursor > 0 {
						cursor--
						ct.printPrompt(prompt, input, cursor)
					}
				}

			default:
				if result.r >= 32 {
					input = append(input, 0)
					copy(input[cursor+1:], input[cursor:])
					input[cursor] = result.r
					cursor++
					ct.printPrompt(prompt, input, cursor)
				}
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return len(ct.reader.runes) > 0
}
