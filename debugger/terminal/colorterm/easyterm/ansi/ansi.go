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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine is the CSI sequence to erase the current line.
const ClearLine = "\033[2K"

// CursorStore and CursorRestore save and recall the cursor position.
const (
	CursorStore   = "\0337"
	CursorRestore = "\0338"
)

// CursorMove is the CSI sequence to move the cursor n characters, negative
// values moving to the left.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	}
	if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// PenColor is the table of colors to be used for text.
var PenColor map[string]string

// DimPens is the table of dimmed colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

func init() {
	PenColor = make(map[string]string)
	DimPens = make(map[string]string)

	for name, col := range colors {
		PenColor[name] = fmt.Sprintf("\033[3%d;1m", col)
		DimPens[name] = fmt.Sprintf("\033[3%d;2m", col)
	}

	PenStyles = map[string]string{
		"bold":      "\033[1m",
		"underline": "\033[4m",
	}
}
