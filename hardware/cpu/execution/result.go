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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Result records the execution details of the most recent instruction. It
// is the unit of information passed to the debugger and to the trace
// output.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// a reference to the instruction definition. nil until the opcode has
	// been fetched and decoded
	Defn *instructions.Definition

	// the data fetched as part of the instruction. for instructions with a
	// one byte operand only the lower byte is significant
	InstructionData uint16

	// the number of bytes read during execution. should agree with
	// Defn.Bytes on completion
	ByteCount int

	// whether the branch condition of a conditional instruction was
	// satisfied. always true for unconditional instructions
	BranchTaken bool

	// is the instruction complete
	Final bool
}

// String returns the instruction address, mnemonic and operand in the style
// of a disassembly listing.
func (result Result) String() string {
	if result.Defn == nil {
		return fmt.Sprintf("%#04x (no instruction)", result.Address)
	}

	operand := result.Defn.Mnemonic
	switch result.Defn.AddressingMode {
	case instructions.Immediate:
		operand = strings.Replace(operand, "n", fmt.Sprintf("$%02x", result.InstructionData&0x00ff), 1)
	case instructions.ImmediateWord:
		operand = strings.Replace(operand, "nn", fmt.Sprintf("$%04x", result.InstructionData), 1)
	case instructions.Relative:
		operand = strings.Replace(operand, "n", fmt.Sprintf("%d", int8(result.InstructionData)), 1)
	}

	return fmt.Sprintf("%#04x %s", result.Address, operand)
}

// Reset prepares the result for a new instruction.
func (result *Result) Reset() {
	result.Address = 0
	result.Defn = nil
	result.InstructionData = 0
	result.ByteCount = 0
	result.BranchTaken = false
	result.Final = false
}
