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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"

	"github.com/jetsetilly/gopherboy/curated"
)

// MinimumSize is the amount of data the memory package expects to find in a
// ROM image. The mapped ROM area spans 0x0000 to 0x7fff and there is no bank
// switching, so images shorter than this are padded during load. Padding
// bytes read as 0xff, the same value an unmapped address returns.
const MinimumSize = 0x8000

// sentinal error pattern for all loader errors.
const NotLoadable = "cartridgeloader: %v: not loadable"

// Loader is used to specify the cartridge to use when attaching to the DMG.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// hash of the loaded cartridge. empty until a load operation has
	// completed, after which it is the SHA1 sum of the file as it was on
	// disk (ie. before any padding)
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return a copy
	// of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load the cartridge data and return it. The data is padded to MinimumSize if
// the file is shorter than that; the original file hash is recorded in the
// Hash field.
func (cl *Loader) Load() ([]byte, error) {
	if len(cl.Data) > 0 {
		return cl.Data, nil
	}

	data, err := ioutil.ReadFile(cl.Filename)
	if err != nil {
		return nil, curated.Errorf(NotLoadable, err)
	}

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	if len(data) < MinimumSize {
		padded := make([]byte, MinimumSize)
		for i := len(data); i < MinimumSize; i++ {
			padded[i] = 0xff
		}
		copy(padded, data)
		data = padded
	}

	cl.Data = data

	return cl.Data, nil
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

func (cl Loader) String() string {
	return cl.Filename
}
