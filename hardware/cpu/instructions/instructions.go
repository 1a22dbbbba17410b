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

package instructions

// Operator defines what an instruction does once any operand bytes have
// been fetched.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota
	Stop
	Halt
	DisableInterrupts
	EnableInterrupts

	// 8 bit loads. source and destination are Operand values; the
	// remaining loads below have fixed shapes of their own
	Load
	LoadImmediate

	// loads through a register pair, with optional post-modification of
	// the pair (the LD (HL+) group)
	LoadIndirectA
	LoadAIndirect

	// loads through a 16 bit address operand
	LoadAddrA
	LoadAAddr
	LoadAddrSP

	// zero page loads. the effective address is 0xff00 plus either the C
	// register or an immediate byte
	LoadHighCA
	LoadHighAC
	LoadHighImmA
	LoadHighAImm

	// 16 bit loads and arithmetic
	LoadPairImmediate
	IncrementPair
	DecrementPair
	AddPair

	// 8 bit arithmetic. Inc and Dec leave the carry flag alone; the
	// accumulator group writes all four flags
	Increment
	Decrement
	Add
	AddWithCarry
	Subtract
	SubtractWithCarry
	And
	Xor
	Or
	Compare

	// accumulator rotates and adjustments
	RotateLeft
	RotateRight
	RotateLeftThroughCarry
	RotateRightThroughCarry
	DecimalAdjust
	Complement
	SetCarry
	ComplementCarry

	// program flow
	JumpRelative
	Jump
)

// AddressingMode describes how many operand bytes follow the opcode and how
// they are interpreted.
type AddressingMode int

// List of valid AddressingMode values. Word operands are little-endian, low
// byte first.
const (
	Implied AddressingMode = iota
	Immediate
	ImmediateWord
	Relative
)

// Operand is a coded reference to one of the 8 bit data locations an
// instruction can name. The numeric values follow the encoding used in the
// opcode itself (bits 0-2 for a source, bits 3-5 for a destination), with
// value 6 meaning the byte addressed by the HL pair.
type Operand int

// List of valid Operand values.
const (
	B Operand = iota
	C
	D
	E
	H
	L
	HLIndirect
	A
	NoOperand
)

func (o Operand) String() string {
	switch o {
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case HLIndirect:
		return "(HL)"
	case A:
		return "A"
	}
	return ""
}

// Pair is a coded reference to one of the 16 bit registers an instruction
// can name. As with Operand, the numeric values follow the opcode encoding
// (bits 4-5 of the 16 bit instruction rows).
type Pair int

// List of valid Pair values.
const (
	BC Pair = iota
	DE
	HL
	SP
	NoPair
)

func (p Pair) String() string {
	switch p {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	}
	return ""
}

// PostModify describes what happens to the HL pair after one of the
// LD (HL+) group of instructions has used it as an address.
type PostModify int

// List of valid PostModify values.
const (
	PostNone PostModify = iota
	PostIncrement
	PostDecrement
)

// Condition attached to a conditional jump. An unsatisfied condition does
// not change the length of the instruction: operand bytes are always
// fetched before the condition is tested.
type Condition int

// List of valid Condition values.
const (
	NoCondition Condition = iota
	OnNotZero
	OnZero
	OnNotCarry
	OnCarry
)

func (c Condition) String() string {
	switch c {
	case OnNotZero:
		return "NZ"
	case OnZero:
		return "Z"
	case OnNotCarry:
		return "NC"
	case OnCarry:
		return "C"
	}
	return ""
}

// Definition defines each instruction in the instruction set; one Definition
// per opcode. The opcode table returned by GetDefinitions() is indexed by
// opcode value.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	Bytes          int
	AddressingMode AddressingMode

	// source and destination for the Load and accumulator arithmetic
	// groups. NoOperand where the operator's shape is fixed
	Source      Operand
	Destination Operand

	// pair register for the 16 bit groups. NoPair otherwise
	Pair Pair

	PostModify PostModify
	Condition  Condition
}

func (defn Definition) String() string {
	return defn.Mnemonic
}
