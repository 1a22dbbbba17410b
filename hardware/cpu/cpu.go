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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// sentinal error pattern for opcodes outside the implemented set, returned
// only when the CPU is in strict mode.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at address %#04x"

// State records whether the CPU is running or has been suspended by the
// HALT or STOP instructions.
type State int

// List of valid State values.
const (
	Running State = iota
	Halted
	Stopped
)

func (s State) String() string {
	switch s {
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	}
	return "running"
}

// CPU implements the LR35902 found in the DMG.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer

	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	// the paired views onto the 8 bit registers above. loading a pair
	// loads the member registers, so the views never go stale
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	Status registers.StatusRegister

	// the master interrupt enable. not addressable; only DI and EI touch it
	IME bool

	State State

	// in strict mode an opcode outside the implemented set is an error.
	// otherwise it is logged and treated as a NOP
	Strict bool

	mem cpubus.Memory

	// details of the last instruction executed
	LastResult execution.Result

	instructions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers take the values they have after the boot ROM has handed over to
// the cartridge.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}
	mc.BC = registers.NewPair(&mc.B, &mc.C, "BC")
	mc.DE = registers.NewPair(&mc.D, &mc.E, "DE")
	mc.HL = registers.NewPair(&mc.H, &mc.L, "HL")
	mc.Reset()
	return mc
}

// Reset restores the CPU to the state it is in immediately after the boot
// ROM has run.
func (mc *CPU) Reset() {
	mc.A = registers.NewRegister(0x01, "A")
	mc.B = registers.NewRegister(0x00, "B")
	mc.C = registers.NewRegister(0x13, "C")
	mc.D = registers.NewRegister(0x00, "D")
	mc.E = registers.NewRegister(0xd8, "E")
	mc.H = registers.NewRegister(0x01, "H")
	mc.L = registers.NewRegister(0x4d, "L")
	mc.Status = registers.NewStatusRegister(0xb0)
	mc.SP = registers.NewStackPointer(0xfffe)
	mc.PC = registers.NewProgramCounter(0x0100)
	mc.IME = false
	mc.State = Running
	mc.LastResult.Reset()
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s F=%s %s %s %s %s [%s]",
		mc.PC, mc.A, mc.Status, mc.BC, mc.DE, mc.HL, mc.SP, mc.State)
}

// interruptPending returns true if any enabled interrupt has been
// requested. The CPU reads the IE and IF registers through the bus like any
// other address.
func (mc *CPU) interruptPending() bool {
	ie := mc.mem.ReadByte(memorymap.AddressIE)
	ifl := mc.mem.ReadByte(memorymap.AddressIF)
	return ie&ifl&0x1f != 0x00
}

// Wake brings the CPU out of the stopped or halted state. On real hardware
// STOP mode ends on a joypad press; here the debugger's WAKE command stands
// in for that.
func (mc *CPU) Wake() {
	mc.State = Running
}

// Interrupt requests the numbered interrupt (0 to 4) by setting the
// corresponding bit of the IF register. Whether the request wakes a halted
// CPU also depends on the IE register.
func (mc *CPU) Interrupt(bit int) {
	ifl := mc.mem.ReadByte(memorymap.AddressIF)
	mc.mem.WriteByte(memorymap.AddressIF, ifl|1<<bit)
}

// fetchByte reads the byte at PC and advances PC, wrapping at the 16 bit
// boundary.
func (mc *CPU) fetchByte() uint8 {
	v := mc.mem.ReadByte(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// fetchWord reads a little-endian word at PC, low byte first.
func (mc *CPU) fetchWord() uint16 {
	lo := mc.fetchByte()
	hi := mc.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// reg8 returns the register named by the operand. The HLIndirect operand
// does not name a register; callers that can see an HLIndirect operand must
// use read8 and write8 instead.
func (mc *CPU) reg8(operand instructions.Operand) *registers.Register {
	switch operand {
	case instructions.B:
		return &mc.B
	case instructions.C:
		return &mc.C
	case instructions.D:
		return &mc.D
	case instructions.E:
		return &mc.E
	case instructions.H:
		return &mc.H
	case instructions.L:
		return &mc.L
	case instructions.A:
		return &mc.A
	}
	panic(fmt.Sprintf("not an 8 bit register (%d)", operand))
}

// read8 returns the value of the data location named by the operand.
func (mc *CPU) read8(operand instructions.Operand) uint8 {
	if operand == instructions.HLIndirect {
		return mc.mem.ReadByte(mc.HL.Address())
	}
	return mc.reg8(operand).Value()
}

// write8 stores a value in the data location named by the operand.
func (mc *CPU) write8(operand instructions.Operand, val uint8) {
	if operand == instructions.HLIndirect {
		mc.mem.WriteByte(mc.HL.Address(), val)
		return
	}
	mc.reg8(operand).Load(val)
}

// pairValue returns the value of the 16 bit register named by the pair
// code.
func (mc *CPU) pairValue(pair instructions.Pair) uint16 {
	switch pair {
	case instructions.BC:
		return mc.BC.Address()
	case instructions.DE:
		return mc.DE.Address()
	case instructions.HL:
		return mc.HL.Address()
	case instructions.SP:
		return mc.SP.Address()
	}
	panic(fmt.Sprintf("not a 16 bit register (%d)", pair))
}

// loadPair stores a value in the 16 bit register named by the pair code.
func (mc *CPU) loadPair(pair instructions.Pair, val uint16) {
	switch pair {
	case instructions.BC:
		mc.BC.Load(val)
	case instructions.DE:
		mc.DE.Load(val)
	case instructions.HL:
		mc.HL.Load(val)
	case instructions.SP:
		mc.SP.Load(val)
	}
}

// postModify adjusts the HL pair after one of the LD (HL+) group.
func (mc *CPU) postModify(defn *instructions.Definition) {
	switch defn.PostModify {
	case instructions.PostIncrement:
		mc.HL.Increment()
	case instructions.PostDecrement:
		mc.HL.Decrement()
	}
}

// branch returns true if the condition is satisfied against the current
// status flags. The NoCondition condition is always satisfied.
func (mc *CPU) branch(condition instructions.Condition) bool {
	switch condition {
	case instructions.OnNotZero:
		return !mc.Status.Zero
	case instructions.OnZero:
		return mc.Status.Zero
	case instructions.OnNotCarry:
		return !mc.Status.Carry
	case instructions.OnCarry:
		return mc.Status.Carry
	}
	return true
}

// aluOperand returns the second operand of an accumulator arithmetic
// instruction: an immediate byte for the immediate versions, the named data
// location otherwise.
func (mc *CPU) aluOperand(defn *instructions.Definition) uint8 {
	if defn.AddressingMode == instructions.Immediate {
		return uint8(mc.LastResult.InstructionData)
	}
	return mc.read8(defn.Source)
}

// ExecuteInstruction executes the instruction at the current PC and updates
// the LastResult field.
//
// If the CPU is halted or stopped no instruction is executed. A halted CPU
// resumes when an enabled interrupt is requested; a stopped CPU resumes
// only with an explicit Wake().
func (mc *CPU) ExecuteInstruction() error {
	if mc.State == Halted && mc.interruptPending() {
		mc.State = Running
	}
	if mc.State != Running {
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.BranchTaken = true

	opcode := mc.fetchByte()
	defn := mc.instructions[opcode]

	if defn == nil {
		if mc.Strict {
			return curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
		}
		logger.Logf("cpu", "unimplemented instruction (%#02x) at address %#04x", opcode, mc.LastResult.Address)
		mc.LastResult.Final = true
		return nil
	}

	mc.LastResult.Defn = defn

	// operand bytes are always fetched, whatever the instruction goes on
	// to do with them. conditional jumps rely on this for their constant
	// length
	switch defn.AddressingMode {
	case instructions.Immediate, instructions.Relative:
		mc.LastResult.InstructionData = uint16(mc.fetchByte())
	case instructions.ImmediateWord:
		mc.LastResult.InstructionData = mc.fetchWord()
	}

	data := mc.LastResult.InstructionData

	switch defn.Operator {
	case instructions.Nop:
		// does nothing, obviously

	case instructions.Stop:
		mc.State = Stopped

	case instructions.Halt:
		// with interrupts disabled and an interrupt already pending, HALT
		// falls through without suspending. the associated hardware bug
		// (the double-read of the following opcode) is not reproduced
		if mc.IME || !mc.interruptPending() {
			mc.State = Halted
		}

	case instructions.DisableInterrupts:
		mc.IME = false

	case instructions.EnableInterrupts:
		// the one instruction delay of EI on real hardware is not modelled
		mc.IME = true

	case instructions.Load:
		mc.write8(defn.Destination, mc.read8(defn.Source))

	case instructions.LoadImmediate:
		mc.write8(defn.Destination, uint8(data))

	case instructions.LoadIndirectA:
		mc.mem.WriteByte(mc.pairValue(defn.Pair), mc.A.Value())
		mc.postModify(defn)

	case instructions.LoadAIndirect:
		mc.A.Load(mc.mem.ReadByte(mc.pairValue(defn.Pair)))
		mc.postModify(defn)

	case instructions.LoadAddrA:
		mc.mem.WriteByte(data, mc.A.Value())

	case instructions.LoadAAddr:
		mc.A.Load(mc.mem.ReadByte(data))

	case instructions.LoadAddrSP:
		sp := mc.SP.Address()
		mc.mem.WriteByte(data, uint8(sp))
		mc.mem.WriteByte(data+1, uint8(sp>>8))

	case instructions.LoadHighCA:
		mc.mem.WriteByte(0xff00|uint16(mc.C.Value()), mc.A.Value())

	case instructions.LoadHighAC:
		mc.A.Load(mc.mem.ReadByte(0xff00 | uint16(mc.C.Value())))

	case instructions.LoadHighImmA:
		mc.mem.WriteByte(0xff00|data, mc.A.Value())

	case instructions.LoadHighAImm:
		mc.A.Load(mc.mem.ReadByte(0xff00 | data))

	case instructions.LoadPairImmediate:
		mc.loadPair(defn.Pair, data)

	case instructions.IncrementPair:
		mc.loadPair(defn.Pair, mc.pairValue(defn.Pair)+1)

	case instructions.DecrementPair:
		mc.loadPair(defn.Pair, mc.pairValue(defn.Pair)-1)

	case instructions.AddPair:
		carry, half := mc.HL.Add(mc.pairValue(defn.Pair))
		mc.Status.Subtract = false
		mc.Status.HalfCarry = half
		mc.Status.Carry = carry

	case instructions.Increment:
		r := registers.NewRegister(mc.read8(defn.Destination), "")
		half := r.Increment()
		mc.write8(defn.Destination, r.Value())
		mc.Status.Zero = r.IsZero()
		mc.Status.Subtract = false
		mc.Status.HalfCarry = half

	case instructions.Decrement:
		r := registers.NewRegister(mc.read8(defn.Destination), "")
		half := r.Decrement()
		mc.write8(defn.Destination, r.Value())
		mc.Status.Zero = r.IsZero()
		mc.Status.Subtract = true
		mc.Status.HalfCarry = half

	case instructions.Add:
		carry, half := mc.A.Add(mc.aluOperand(defn), false)
		mc.setArithmeticFlags(mc.A.IsZero(), false, half, carry)

	case instructions.AddWithCarry:
		carry, half := mc.A.Add(mc.aluOperand(defn), mc.Status.Carry)
		mc.setArithmeticFlags(mc.A.IsZero(), false, half, carry)

	case instructions.Subtract:
		carry, half := mc.A.Subtract(mc.aluOperand(defn), false)
		mc.setArithmeticFlags(mc.A.IsZero(), true, half, carry)

	case instructions.SubtractWithCarry:
		carry, half := mc.A.Subtract(mc.aluOperand(defn), mc.Status.Carry)
		mc.setArithmeticFlags(mc.A.IsZero(), true, half, carry)

	case instructions.And:
		mc.A.AND(mc.aluOperand(defn))
		mc.setArithmeticFlags(mc.A.IsZero(), false, true, false)

	case instructions.Xor:
		mc.A.XOR(mc.aluOperand(defn))
		mc.setArithmeticFlags(mc.A.IsZero(), false, false, false)

	case instructions.Or:
		mc.A.OR(mc.aluOperand(defn))
		mc.setArithmeticFlags(mc.A.IsZero(), false, false, false)

	case instructions.Compare:
		// a subtraction that discards the result and keeps the flags
		r := registers.NewRegister(mc.A.Value(), "")
		carry, half := r.Subtract(mc.aluOperand(defn), false)
		mc.setArithmeticFlags(r.IsZero(), true, half, carry)

	case instructions.RotateLeft:
		v := mc.A.Value()
		mc.A.Load(v<<1 | v>>7)
		mc.setArithmeticFlags(false, false, false, v&0x80 == 0x80)

	case instructions.RotateRight:
		v := mc.A.Value()
		mc.A.Load(v>>1 | v<<7)
		mc.setArithmeticFlags(false, false, false, v&0x01 == 0x01)

	case instructions.RotateLeftThroughCarry:
		v := mc.A.Value()
		n := v << 1
		if mc.Status.Carry {
			n |= 0x01
		}
		mc.A.Load(n)
		mc.setArithmeticFlags(false, false, false, v&0x80 == 0x80)

	case instructions.RotateRightThroughCarry:
		v := mc.A.Value()
		n := v >> 1
		if mc.Status.Carry {
			n |= 0x80
		}
		mc.A.Load(n)
		mc.setArithmeticFlags(false, false, false, v&0x01 == 0x01)

	case instructions.DecimalAdjust:
		mc.decimalAdjust()

	case instructions.Complement:
		mc.A.Load(^mc.A.Value())
		mc.Status.Subtract = true
		mc.Status.HalfCarry = true

	case instructions.SetCarry:
		mc.Status.Subtract = false
		mc.Status.HalfCarry = false
		mc.Status.Carry = true

	case instructions.ComplementCarry:
		mc.Status.Subtract = false
		mc.Status.HalfCarry = false
		mc.Status.Carry = !mc.Status.Carry

	case instructions.JumpRelative:
		if mc.branch(defn.Condition) {
			mc.PC.Add(uint16(int8(data)))
		} else {
			mc.LastResult.BranchTaken = false
		}

	case instructions.Jump:
		mc.PC.Load(data)

	default:
		// the definitions table and this switch have fallen out of step
		panic(fmt.Sprintf("unhandled operator for instruction (%s)", defn.Mnemonic))
	}

	mc.LastResult.Final = true

	return nil
}

func (mc *CPU) setArithmeticFlags(zero bool, subtract bool, half bool, carry bool) {
	mc.Status.Zero = zero
	mc.Status.Subtract = subtract
	mc.Status.HalfCarry = half
	mc.Status.Carry = carry
}

// decimalAdjust implements the DAA instruction, which corrects the
// accumulator after arithmetic on BCD values. The correction to apply
// depends on the subtract, half-carry and carry flags left by the
// preceding instruction.
func (mc *CPU) decimalAdjust() {
	a := mc.A.Value()
	carry := mc.Status.Carry

	if mc.Status.Subtract {
		// after a subtraction only the flags matter. a valid BCD
		// subtraction can never produce a spurious carry
		if mc.Status.HalfCarry {
			a -= 0x06
		}
		if mc.Status.Carry {
			a -= 0x60
		}
	} else {
		if mc.Status.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
		if mc.Status.Carry || mc.A.Value() > 0x99 {
			a += 0x60
			carry = true
		}
	}

	mc.A.Load(a)
	mc.Status.Zero = a == 0x00
	mc.Status.HalfCarry = false
	mc.Status.Carry = carry
}
