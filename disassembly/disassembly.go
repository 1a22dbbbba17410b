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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Entry is one line of a disassembly.
type Entry struct {
	Address uint16
	Bytes   []uint8

	// the mnemonic with any operand value substituted in. for a byte that
	// does not decode to an implemented instruction the mnemonic is a
	// .byte directive
	Operator string
}

func (e Entry) String() string {
	b := strings.Builder{}
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}
	return fmt.Sprintf("0x%04x  %-9s %s", e.Address, strings.TrimSpace(b.String()), e.Operator)
}

// Decode disassembles count instructions, reading bytes with the supplied
// read function. Decoding is a linear sweep: every byte is assumed to start
// an instruction unless it fails to decode, in which case it is emitted as
// a .byte directive and the sweep continues at the next address.
func Decode(read func(uint16) uint8, origin uint16, count int) []Entry {
	defns := instructions.GetDefinitions()
	entries := make([]Entry, 0, count)

	address := origin
	for i := 0; i < count; i++ {
		e := Entry{Address: address}

		opcode := read(address)
		e.Bytes = append(e.Bytes, opcode)
		address++

		defn := defns[opcode]
		if defn == nil {
			e.Operator = fmt.Sprintf(".byte $%02x", opcode)
			entries = append(entries, e)
			continue
		}

		var data uint16
		switch defn.AddressingMode {
		case instructions.Immediate, instructions.Relative:
			lo := read(address)
			e.Bytes = append(e.Bytes, lo)
			address++
			data = uint16(lo)
		case instructions.ImmediateWord:
			lo := read(address)
			hi := read(address + 1)
			e.Bytes = append(e.Bytes, lo, hi)
			address += 2
			data = uint16(hi)<<8 | uint16(lo)
		}

		e.Operator = defn.Mnemonic
		switch defn.AddressingMode {
		case instructions.Immediate:
			e.Operator = strings.Replace(e.Operator, "n", fmt.Sprintf("$%02x", data), 1)
		case instructions.ImmediateWord:
			e.Operator = strings.Replace(e.Operator, "nn", fmt.Sprintf("$%04x", data), 1)
		case instructions.Relative:
			// show the target address rather than the raw displacement
			e.Operator = strings.Replace(e.Operator, "n", fmt.Sprintf("$%04x", address+uint16(int8(data))), 1)
		}

		entries = append(entries, e)
	}

	return entries
}

// Disassembly is the result of a linear sweep over a cartridge image.
type Disassembly struct {
	Entries []Entry
}

// FromCartridge disassembles the cartridge in the loader.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	data, err := cartload.Load()
	if err != nil {
		return nil, err
	}

	dsm := &Disassembly{}

	read := func(address uint16) uint8 {
		if int(address) < len(data) {
			return data[address]
		}
		return 0xff
	}

	// sweep from the cartridge entry point to the end of the image. the
	// header area below 0x0100 is mostly data and the logo bitmap so there
	// is little value in decoding it
	address := 0x0100
	for address < len(data) {
		e := Decode(read, uint16(address), 1)
		dsm.Entries = append(dsm.Entries, e...)
		address += len(e[0].Bytes)
	}

	return dsm, nil
}

// Write the entire disassembly to output.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return err
		}
	}
	return nil
}
