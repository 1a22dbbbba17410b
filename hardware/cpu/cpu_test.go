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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers/assert"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPostBootState(t *testing.T) {
	mc := cpu.NewCPU(newMockMem())

	assert.Assert(t, mc.A, 0x01)
	assert.Assert(t, mc.Status, "ZnHC")
	assert.Assert(t, mc.BC, 0x0013)
	assert.Assert(t, mc.DE, 0x00d8)
	assert.Assert(t, mc.HL, 0x014d)
	assert.Assert(t, mc.SP, 0xfffe)
	assert.Assert(t, mc.PC, 0x0100)
	test.Equate(t, mc.IME, false)
	test.Equate(t, mc.State, cpu.Running)
}

func TestLoads(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD H,0xc0 ; LD L,0x05 ; LD (HL),0x99 ; LD B,(HL) ; LD (HL),B is a
	// wash, then LD A,B
	mem.putInstructions(0x0100, 0x26, 0xc0, 0x2e, 0x05, 0x36, 0x99, 0x46, 0x70, 0x78)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.HL, 0xc005)

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xc005), 0x99)

	step(t, mc)
	assert.Assert(t, mc.B, 0x99)

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x99)
	assert.Assert(t, mc.PC, 0x0109)

	// loads never touch the flags
	assert.Assert(t, mc.Status, "ZnHC")
}

func TestLoadTrace(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x0100, 0x06, 0x10)
	step(t, mc)
	test.Equate(t, mc.LastResult.String(), "0x0100 LD B,$10")
	test.Equate(t, mc.LastResult.ByteCount, 2)
	test.Equate(t, mc.LastResult.Final, true)
}

func TestIncrementDecrement(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD B,0xff ; INC B ; DEC B
	mem.putInstructions(0x0100, 0x06, 0xff, 0x04, 0x05)
	step(t, mc)

	// increment wraps to zero with the half-carry set. the carry flag is
	// preserved from the post-boot state throughout
	step(t, mc)
	assert.Assert(t, mc.B, 0x00)
	assert.Assert(t, mc.Status, "ZnHC")

	// decrement wraps back to 0xff
	step(t, mc)
	assert.Assert(t, mc.B, 0xff)
	assert.Assert(t, mc.Status, "zNHC")
}

func TestIncrementHLIndirect(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD HL,0xc000 ; LD (HL),0x0f ; INC (HL) ; DEC (HL)
	mem.putInstructions(0x0100, 0x21, 0x00, 0xc0, 0x36, 0x0f, 0x34, 0x35)
	step(t, mc)
	step(t, mc)

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xc000), 0x10)
	assert.Assert(t, mc.Status, "znHC")

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xc000), 0x0f)
	assert.Assert(t, mc.Status, "zNHC")
}

func TestAddCarryChain(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0xff ; ADD A,0x01 ; ADC A,0x00
	mem.putInstructions(0x0100, 0x3e, 0xff, 0xc6, 0x01, 0xce, 0x00)
	step(t, mc)

	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "ZnHC")

	// the carry from the previous addition feeds the ADC
	step(t, mc)
	assert.Assert(t, mc.A, 0x01)
	assert.Assert(t, mc.Status, "znhc")
}

func TestSubtractCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x10 ; SUB 0x11 ; LD A,0x42 ; CP 0x42 ; CP 0x50
	mem.putInstructions(0x0100, 0x3e, 0x10, 0xd6, 0x11, 0x3e, 0x42, 0xfe, 0x42, 0xfe, 0x50)
	step(t, mc)

	step(t, mc)
	assert.Assert(t, mc.A, 0xff)
	assert.Assert(t, mc.Status, "zNHC")

	// compare leaves the accumulator alone
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.Status, "ZNhc")

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.Status, "zNhC")
}

func TestLogicalOperations(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x5a ; LD B,0x0f ; AND B ; XOR A ; OR B
	mem.putInstructions(0x0100, 0x3e, 0x5a, 0x06, 0x0f, 0xa0, 0xaf, 0xb0)
	step(t, mc)
	step(t, mc)

	step(t, mc)
	assert.Assert(t, mc.A, 0x0a)
	assert.Assert(t, mc.Status, "znHc")

	// XOR A is the conventional way of zeroing the accumulator
	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "Znhc")

	step(t, mc)
	assert.Assert(t, mc.A, 0x0f)
	assert.Assert(t, mc.Status, "znhc")
}

func TestRotates(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x85 ; RLCA ; RLA ; LD A,0x01 ; RRCA ; LD A,0x01 ; RRA
	mem.putInstructions(0x0100, 0x3e, 0x85, 0x07, 0x17, 0x3e, 0x01, 0x0f, 0x3e, 0x01, 0x1f)
	step(t, mc)

	step(t, mc)
	assert.Assert(t, mc.A, 0x0b)
	assert.Assert(t, mc.Status, "znhC")

	// RLA rotates through the carry left by RLCA
	step(t, mc)
	assert.Assert(t, mc.A, 0x17)
	assert.Assert(t, mc.Status, "znhc")

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "znhC")

	// RRA shifts the carry into bit 7 and bit 0 back out into the carry.
	// the zero flag stays clear even though the result is zero
	step(t, mc)
	mc.Status.Carry = false
	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "znhC")
}

func TestDecimalAdjust(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x45 ; ADD A,0x38 ; DAA
	mem.putInstructions(0x0100, 0x3e, 0x45, 0xc6, 0x38, 0x27)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x7d)
	step(t, mc)
	assert.Assert(t, mc.A, 0x83)
	assert.Assert(t, mc.Status, "znhc")

	// after a subtraction. 0x45 - 0x38 should read 07 in BCD
	mc.Reset()
	mem.putInstructions(0x0100, 0x3e, 0x45, 0xd6, 0x38, 0x27)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x0d)
	step(t, mc)
	assert.Assert(t, mc.A, 0x07)
	assert.Assert(t, mc.Status, "zNhc")

	// 0x99 + 0x01 carries out of the BCD range
	mc.Reset()
	mem.putInstructions(0x0100, 0x3e, 0x99, 0xc6, 0x01, 0x27)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "ZnhC")
}

func TestFlagInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x0f ; CPL ; SCF ; CCF
	mem.putInstructions(0x0100, 0x3e, 0x0f, 0x2f, 0x37, 0x3f)
	step(t, mc)

	step(t, mc)
	assert.Assert(t, mc.A, 0xf0)
	assert.Assert(t, mc.Status, "ZNHC")

	step(t, mc)
	assert.Assert(t, mc.Status, "ZnhC")

	step(t, mc)
	assert.Assert(t, mc.Status, "Znhc")
}

func TestJumpRelative(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// the zero flag is set on reset. JR NZ is not taken but still consumes
	// its displacement byte; JR Z is taken
	mem.putInstructions(0x0100, 0x20, 0x05, 0x28, 0x02)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0102)
	test.Equate(t, mc.LastResult.BranchTaken, false)

	step(t, mc)
	assert.Assert(t, mc.PC, 0x0106)
	test.Equate(t, mc.LastResult.BranchTaken, true)

	// backwards jump. the displacement is relative to the address of the
	// following instruction
	mem.putInstructions(0x0106, 0x18, 0xfc)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0104)
}

func TestJumpAbsolute(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x0100, 0xc3, 0x00, 0x02)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0200)
}

func TestSixteenBit(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD BC,0xffff ; INC BC ; DEC BC ; LD (nn),SP
	mem.putInstructions(0x0100, 0x01, 0xff, 0xff, 0x03, 0x0b, 0x08, 0x34, 0x12)
	step(t, mc)
	assert.Assert(t, mc.BC, 0xffff)

	// 16 bit increment and decrement leave the flags alone
	step(t, mc)
	assert.Assert(t, mc.BC, 0x0000)
	assert.Assert(t, mc.Status, "ZnHC")

	step(t, mc)
	assert.Assert(t, mc.BC, 0xffff)

	// LD (nn),SP stores low byte first
	step(t, mc)
	test.Equate(t, mem.ReadByte(0x1234), 0xfe)
	test.Equate(t, mem.ReadByte(0x1235), 0xff)
}

func TestAddPair(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD HL,0x8a23 ; LD BC,0x0605 ; ADD HL,BC ; ADD HL,HL
	mem.putInstructions(0x0100, 0x21, 0x23, 0x8a, 0x01, 0x05, 0x06, 0x09, 0x29)
	step(t, mc)
	step(t, mc)

	// carry out of bit 11 but not bit 15. the zero flag is untouched by
	// the 16 bit addition
	step(t, mc)
	assert.Assert(t, mc.HL, 0x9028)
	assert.Assert(t, mc.Status, "ZnHc")

	step(t, mc)
	assert.Assert(t, mc.HL, 0x2050)
	assert.Assert(t, mc.Status, "ZnhC")
}

func TestIndirectLoads(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD HL,0xc000 ; LD A,0x11 ; LD (HL+),A ; LD (HL-),A ;
	// LD BC,0xc000 ; LD A,(BC) ; LD DE,0xc001 ; LD A,(DE)
	mem.putInstructions(0x0100,
		0x21, 0x00, 0xc0,
		0x3e, 0x11,
		0x22,
		0x32,
		0x01, 0x00, 0xc0,
		0x3e, 0x00,
		0x0a,
		0x11, 0x01, 0xc0,
		0x1a,
	)

	step(t, mc)
	step(t, mc)

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xc000), 0x11)
	assert.Assert(t, mc.HL, 0xc001)

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xc001), 0x11)
	assert.Assert(t, mc.HL, 0xc000)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x11)

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x11)
}

func TestAbsoluteAndZeroPageLoads(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x42 ; LD (nn),A ; LDH (n),A ; LD C,0x81 ; LDH (C),A ;
	// LDH A,(n) ; LD A,(nn) ; LDH A,(C)
	mem.putInstructions(0x0100,
		0x3e, 0x42,
		0xea, 0x00, 0xd0,
		0xe0, 0x80,
		0x0e, 0x81,
		0xe2,
		0xf0, 0x90,
		0xfa, 0x00, 0xd0,
		0xf2,
	)
	mem.WriteByte(0xff90, 0x77)

	step(t, mc)

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xd000), 0x42)

	step(t, mc)
	test.Equate(t, mem.ReadByte(0xff80), 0x42)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mem.ReadByte(0xff81), 0x42)

	step(t, mc)
	assert.Assert(t, mc.A, 0x77)

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.PC, 0x0110)
}

func TestHaltAndWake(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// EI ; HALT
	mem.putInstructions(0x0100, 0xfb, 0x76)
	step(t, mc)
	test.Equate(t, mc.IME, true)

	step(t, mc)
	test.Equate(t, mc.State, cpu.Halted)

	// halted CPU does nothing
	step(t, mc)
	test.Equate(t, mc.State, cpu.Halted)
	assert.Assert(t, mc.PC, 0x0102)

	// an enabled and requested interrupt wakes the CPU. the instruction
	// after the HALT runs in the same call
	mem.WriteByte(0xffff, 0x01)
	mem.WriteByte(0xff0f, 0x01)
	step(t, mc)
	test.Equate(t, mc.State, cpu.Running)
	assert.Assert(t, mc.PC, 0x0103)
}

func TestHaltWithPendingInterrupt(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// with IME clear and an interrupt already pending, HALT does not
	// suspend at all
	mem.WriteByte(0xffff, 0x04)
	mem.WriteByte(0xff0f, 0x04)
	mem.putInstructions(0x0100, 0x76)
	step(t, mc)
	test.Equate(t, mc.State, cpu.Running)
	assert.Assert(t, mc.PC, 0x0101)
}

func TestStop(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x0100, 0x10, 0x00)
	step(t, mc)
	test.Equate(t, mc.State, cpu.Stopped)

	// an interrupt does not end the stopped state
	mem.WriteByte(0xffff, 0x10)
	mem.WriteByte(0xff0f, 0x10)
	step(t, mc)
	test.Equate(t, mc.State, cpu.Stopped)

	mc.Wake()
	test.Equate(t, mc.State, cpu.Running)
}

func TestDisableEnableInterrupts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x0100, 0xfb, 0xf3)
	step(t, mc)
	test.Equate(t, mc.IME, true)
	step(t, mc)
	test.Equate(t, mc.IME, false)
}

func TestUnimplementedOpcode(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// by default an opcode outside the implemented set is skipped
	mem.putInstructions(0x0100, 0xcb, 0x00)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0101)

	// in strict mode it is an error
	mc.Reset()
	mc.Strict = true
	err := mc.ExecuteInstruction()
	if err == nil {
		t.Fatal("expected error executing unimplemented opcode in strict mode")
	}
	if !curated.Is(err, cpu.UnimplementedInstruction) {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestProgram(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LD A,0x42 ; LD B,0x10 ; ADD A,0x11 ; SUB 0x11
	mem.putInstructions(0x0100, 0x3e, 0x42, 0x06, 0x10, 0xc6, 0x11, 0xd6, 0x11)

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.Status, "ZnHC")

	step(t, mc)
	assert.Assert(t, mc.B, 0x10)

	step(t, mc)
	assert.Assert(t, mc.A, 0x53)
	assert.Assert(t, mc.Status, "znhc")

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.Status, "zNhc")

	assert.Assert(t, mc.PC, 0x0108)
}
