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

//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Address of the statsview server.
const Address = ""

// Available returns true if the statsview feature has been compiled in.
func Available() bool {
	return false
}

// Launch the statsview server. This is the stub function for when the
// statsview build tag has not been specified.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "statsview not compiled in. rebuild with statsview build tag")
}
