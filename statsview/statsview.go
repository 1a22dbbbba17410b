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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statsview server.
const Address = "localhost:12600"

// Available returns true if the statsview feature has been compiled in.
func Available() bool {
	return true
}

// Launch the statsview server. Information is available via a web browser
// at the Address url.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	go func() {
		statsview.New().Start()
	}()
	fmt.Fprintf(output, "stats server available at %s/debug/statsview\n", Address)
}
