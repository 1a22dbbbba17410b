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
	"sort"
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface for the
// debugger's command set. Repeated completion of the same input cycles
// through the candidate commands.
type tabCompletion struct {
	lastGuess string
	matches   []string
	idx       int
}

func (tc *tabCompletion) Complete(input string) string {
	// completion only makes sense for the first word of the input
	if strings.Contains(strings.TrimSpace(input), " ") {
		return input
	}

	if tc.lastGuess == "" || !strings.EqualFold(input, tc.lastGuess) {
		tc.matches = tc.matches[:0]
		prefix := strings.ToUpper(strings.TrimSpace(input))
		for name := range commands {
			if strings.HasPrefix(name, prefix) {
				tc.matches = append(tc.matches, name)
			}
		}
		sort.Strings(tc.matches)
		tc.idx = 0
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.lastGuess = tc.matches[tc.idx]
	tc.idx = (tc.idx + 1) % len(tc.matches)
	return tc.lastGuess
}

func (tc *tabCompletion) Reset() {
	tc.lastGuess = ""
	tc.matches = tc.matches[:0]
	tc.idx = 0
}
