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

import "fmt"

func operandBytes(mode AddressingMode) int {
	switch mode {
	case Immediate, Relative:
		return 2
	case ImmediateWord:
		return 3
	}
	return 1
}

func newDefinition(opcode uint8, operator Operator, mnemonic string, mode AddressingMode) Definition {
	return Definition{
		OpCode:         opcode,
		Operator:       operator,
		Mnemonic:       mnemonic,
		Bytes:          operandBytes(mode),
		AddressingMode: mode,
		Source:         NoOperand,
		Destination:    NoOperand,
		Pair:           NoPair,
	}
}

// GetDefinitions returns the table of implemented instructions, indexed by
// opcode. A nil entry means the opcode is not part of the implemented set;
// how the CPU reacts to one of those depends on whether it is running in
// strict mode.
func GetDefinitions() []*Definition {
	defns := make([]*Definition, 256)

	add := func(defn Definition) {
		defns[defn.OpCode] = &defn
	}

	// the misc instructions that live in the gaps of the regular blocks
	add(newDefinition(0x00, Nop, "NOP", Implied))
	add(newDefinition(0x10, Stop, "STOP", Implied))
	add(newDefinition(0x76, Halt, "HALT", Implied))
	add(newDefinition(0xf3, DisableInterrupts, "DI", Implied))
	add(newDefinition(0xfb, EnableInterrupts, "EI", Implied))

	add(newDefinition(0x07, RotateLeft, "RLCA", Implied))
	add(newDefinition(0x0f, RotateRight, "RRCA", Implied))
	add(newDefinition(0x17, RotateLeftThroughCarry, "RLA", Implied))
	add(newDefinition(0x1f, RotateRightThroughCarry, "RRA", Implied))
	add(newDefinition(0x27, DecimalAdjust, "DAA", Implied))
	add(newDefinition(0x2f, Complement, "CPL", Implied))
	add(newDefinition(0x37, SetCarry, "SCF", Implied))
	add(newDefinition(0x3f, ComplementCarry, "CCF", Implied))

	add(newDefinition(0x08, LoadAddrSP, "LD (nn),SP", ImmediateWord))

	// relative jumps. the condition is tested after the displacement byte
	// has been fetched so the instruction is two bytes long either way
	jumps := []struct {
		opcode    uint8
		condition Condition
	}{
		{0x18, NoCondition},
		{0x20, OnNotZero},
		{0x28, OnZero},
		{0x30, OnNotCarry},
		{0x38, OnCarry},
	}
	for _, j := range jumps {
		mnemonic := "JR n"
		if j.condition != NoCondition {
			mnemonic = fmt.Sprintf("JR %s,n", j.condition)
		}
		defn := newDefinition(j.opcode, JumpRelative, mnemonic, Relative)
		defn.Condition = j.condition
		add(defn)
	}

	add(newDefinition(0xc3, Jump, "JP nn", ImmediateWord))

	// the accumulator loads through an absolute or zero page address
	add(newDefinition(0xe0, LoadHighImmA, "LDH (n),A", Immediate))
	add(newDefinition(0xf0, LoadHighAImm, "LDH A,(n)", Immediate))
	add(newDefinition(0xe2, LoadHighCA, "LDH (C),A", Implied))
	add(newDefinition(0xf2, LoadHighAC, "LDH A,(C)", Implied))
	add(newDefinition(0xea, LoadAddrA, "LD (nn),A", ImmediateWord))
	add(newDefinition(0xfa, LoadAAddr, "LD A,(nn)", ImmediateWord))

	// the 16 bit block. opcode bits 4-5 select the pair
	for i, pair := range []Pair{BC, DE, HL, SP} {
		base := uint8(i) << 4

		defn := newDefinition(base|0x01, LoadPairImmediate, fmt.Sprintf("LD %s,nn", pair), ImmediateWord)
		defn.Pair = pair
		add(defn)

		defn = newDefinition(base|0x03, IncrementPair, fmt.Sprintf("INC %s", pair), Implied)
		defn.Pair = pair
		add(defn)

		defn = newDefinition(base|0x09, AddPair, fmt.Sprintf("ADD HL,%s", pair), Implied)
		defn.Pair = pair
		add(defn)

		defn = newDefinition(base|0x0b, DecrementPair, fmt.Sprintf("DEC %s", pair), Implied)
		defn.Pair = pair
		add(defn)
	}

	// the accumulator loads through a register pair. rows two and three use
	// HL and post-modify it
	indirects := []struct {
		base       uint8
		pair       Pair
		postModify PostModify
		operand    string
	}{
		{0x00, BC, PostNone, "(BC)"},
		{0x10, DE, PostNone, "(DE)"},
		{0x20, HL, PostIncrement, "(HL+)"},
		{0x30, HL, PostDecrement, "(HL-)"},
	}
	for _, ind := range indirects {
		defn := newDefinition(ind.base|0x02, LoadIndirectA, fmt.Sprintf("LD %s,A", ind.operand), Implied)
		defn.Pair = ind.pair
		defn.PostModify = ind.postModify
		add(defn)

		defn = newDefinition(ind.base|0x0a, LoadAIndirect, fmt.Sprintf("LD A,%s", ind.operand), Implied)
		defn.Pair = ind.pair
		defn.PostModify = ind.postModify
		add(defn)
	}

	// 8 bit increment, decrement and load immediate. opcode bits 3-5
	// select the destination
	for i := 0; i <= 7; i++ {
		operand := Operand(i)
		base := uint8(i) << 3

		defn := newDefinition(base|0x04, Increment, fmt.Sprintf("INC %s", operand), Implied)
		defn.Destination = operand
		add(defn)

		defn = newDefinition(base|0x05, Decrement, fmt.Sprintf("DEC %s", operand), Implied)
		defn.Destination = operand
		add(defn)

		defn = newDefinition(base|0x06, LoadImmediate, fmt.Sprintf("LD %s,n", operand), Immediate)
		defn.Destination = operand
		add(defn)
	}

	// the 8 bit register to register loads. a quarter of the opcode space
	// in one block, with HALT sitting in the place of LD (HL),(HL)
	for dest := 0; dest <= 7; dest++ {
		for src := 0; src <= 7; src++ {
			opcode := 0x40 | uint8(dest)<<3 | uint8(src)
			if opcode == 0x76 {
				continue
			}
			defn := newDefinition(opcode, Load, fmt.Sprintf("LD %s,%s", Operand(dest), Operand(src)), Implied)
			defn.Source = Operand(src)
			defn.Destination = Operand(dest)
			add(defn)
		}
	}

	// the accumulator arithmetic block, and the corresponding immediate
	// versions at the top of the opcode space
	arithmetic := []struct {
		operator Operator
		format   string
	}{
		{Add, "ADD A,%s"},
		{AddWithCarry, "ADC A,%s"},
		{Subtract, "SUB %s"},
		{SubtractWithCarry, "SBC A,%s"},
		{And, "AND %s"},
		{Xor, "XOR %s"},
		{Or, "OR %s"},
		{Compare, "CP %s"},
	}
	for i, ar := range arithmetic {
		for src := 0; src <= 7; src++ {
			opcode := 0x80 | uint8(i)<<3 | uint8(src)
			defn := newDefinition(opcode, ar.operator, fmt.Sprintf(ar.format, Operand(src)), Implied)
			defn.Source = Operand(src)
			add(defn)
		}

		opcode := 0xc6 | uint8(i)<<3
		add(newDefinition(opcode, ar.operator, fmt.Sprintf(ar.format, "n"), Immediate))
	}

	return defns
}
