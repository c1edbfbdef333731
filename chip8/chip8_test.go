// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package chip8_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/framebuffer"
	"github.com/jetsetilly/gopher8/renderloop"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

var _ renderloop.Interpreter = (*chip8.VM)(nil)
var _ userinput.HandleInput = (*chip8.VM)(nil)

func newVM(t *testing.T, quirks chip8.Quirks, program ...uint16) *chip8.VM {
	t.Helper()
	vm := chip8.New(quirks)
	vm.Seed(0)
	data := make([]byte, 0, len(program)*2)
	for _, w := range program {
		data = append(data, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(t, vm.LoadProgram(data))
	return vm
}

func steps(t *testing.T, vm *chip8.VM, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, vm.Step(), i)
	}
}

func peek(t *testing.T, vm *chip8.VM, address uint16) uint8 {
	t.Helper()
	v, err := vm.Peek(address)
	test.DemandSuccess(t, err)
	return v
}

func TestLoadProgram(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks, 0x1234, 0x5678)
	test.ExpectEquality(t, peek(t, vm, 0x200), 0x12)
	test.ExpectEquality(t, peek(t, vm, 0x203), 0x78)
	test.ExpectEquality(t, vm.PC(), chip8.ProgramAddress)
	test.ExpectEquality(t, vm.SP(), chip8.StackStart)

	// font is present
	test.ExpectEquality(t, peek(t, vm, chip8.FontAddress), 0xf0)
	test.ExpectEquality(t, peek(t, vm, chip8.FontAddress+5), 0x20)

	err := vm.LoadProgram(make([]byte, chip8.MaxProgramSize+1))
	test.ExpectSuccess(t, errors.Is(err, chip8.ErrProgramTooLarge))

	// the largest program fits
	test.ExpectSuccess(t, vm.LoadProgram(make([]byte, chip8.MaxProgramSize)))

	_, err = vm.Peek(chip8.MemorySize)
	test.ExpectSuccess(t, errors.Is(err, chip8.ErrMemoryAccess))
}

func TestAddRegistersOverflow(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x60f0, // LD V0, f0
		0x610f, // LD V1, 0f
		0x8014, // ADD V0, V1
		0x8014, // ADD V0, V1
	)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.V(0), 0xff)
	test.ExpectEquality(t, vm.V(0xf), 0)

	steps(t, vm, 1)
	test.ExpectEquality(t, vm.V(0), 0x0e)
	test.ExpectEquality(t, vm.V(0xf), 1)
}

func TestAddByteNoFlag(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x6ff0, // LD VF, f0
		0x6005, // LD V0, 05
		0x70ff, // ADD V0, ff
	)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.V(0), 0x04)
	test.ExpectEquality(t, vm.V(0xf), 0xf0)
}

func TestSubtract(t *testing.T) {
	// 8xy5 sets VF when the subtraction borrows
	vm := newVM(t, chip8.DefaultQuirks,
		0x6002, // LD V0, 02
		0x6101, // LD V1, 01
		0x8015, // SUB V0, V1
		0x8015, // SUB V0, V1
		0x8015, // SUB V0, V1
	)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.V(0), 1)
	test.ExpectEquality(t, vm.V(0xf), 0)
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.V(0), 0)
	test.ExpectEquality(t, vm.V(0xf), 0)
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.V(0), 0xff)
	test.ExpectEquality(t, vm.V(0xf), 1)

	// 8xy7 is the same with the operands reversed
	vm = newVM(t, chip8.DefaultQuirks,
		0x6001, // LD V0, 01
		0x6102, // LD V1, 02
		0x8017, // SUBN V0, V1
		0x6003, // LD V0, 03
		0x8017, // SUBN V0, V1
	)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.V(0), 1)
	test.ExpectEquality(t, vm.V(0xf), 0)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.V(0), 0xff)
	test.ExpectEquality(t, vm.V(0xf), 1)
}

func TestLogic(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x60f0, // LD V0, f0
		0x613c, // LD V1, 3c
		0x8200, // LD V2, V0
		0x8211, // OR V2, V1
		0x8300, // LD V3, V0
		0x8312, // AND V3, V1
		0x8400, // LD V4, V0
		0x8413, // XOR V4, V1
	)
	steps(t, vm, 8)
	test.ExpectEquality(t, vm.V(2), 0xfc)
	test.ExpectEquality(t, vm.V(3), 0x30)
	test.ExpectEquality(t, vm.V(4), 0xcc)
}

func TestShiftQuirk(t *testing.T) {
	program := []uint16{
		0x6081, // LD V0, 81
		0x6102, // LD V1, 02
		0x8016, // SHR V0, V1
		0x6281, // LD V2, 81
		0x821e, // SHL V2, V1
	}

	// shift in place
	vm := newVM(t, chip8.DefaultQuirks, program...)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.V(0), 0x40)
	test.ExpectEquality(t, vm.V(0xf), 1)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.V(2), 0x02)
	test.ExpectEquality(t, vm.V(0xf), 1)

	// shift Vy into Vx
	vm = newVM(t, chip8.Quirks{}, program...)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.V(0), 0x01)
	test.ExpectEquality(t, vm.V(0xf), 0)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.V(2), 0x04)
	test.ExpectEquality(t, vm.V(0xf), 0)
}

func TestLoadStoreQuirk(t *testing.T) {
	program := []uint16{
		0x6011, // LD V0, 11
		0x6122, // LD V1, 22
		0x6233, // LD V2, 33
		0xa300, // LD I, 300
		0xf255, // LD [I], V2
		0xa300, // LD I, 300
		0xf165, // LD V1, [I]
	}

	vm := newVM(t, chip8.DefaultQuirks, program...)
	steps(t, vm, 5)
	test.ExpectEquality(t, peek(t, vm, 0x300), 0x11)
	test.ExpectEquality(t, peek(t, vm, 0x301), 0x22)
	test.ExpectEquality(t, peek(t, vm, 0x302), 0x33)
	test.ExpectEquality(t, vm.I(), 0x300)

	vm = newVM(t, chip8.Quirks{}, program...)
	steps(t, vm, 5)
	test.ExpectEquality(t, vm.I(), 0x303)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.I(), 0x302)
	test.ExpectEquality(t, vm.V(1), 0x22)
}

func TestBCD(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x60ea, // LD V0, ea (234)
		0xa300, // LD I, 300
		0xf033, // LD B, V0
	)
	steps(t, vm, 3)
	test.ExpectEquality(t, peek(t, vm, 0x300), 2)
	test.ExpectEquality(t, peek(t, vm, 0x301), 3)
	test.ExpectEquality(t, peek(t, vm, 0x302), 4)
}

func TestFontLocation(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x600a, // LD V0, 0a
		0xf029, // LD F, V0
	)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.I(), chip8.FontAddress+50)
}

func TestSkips(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x6005, // LD V0, 05
		0x3005, // SE V0, 05 (skips)
		0x0000,
		0x4005, // SNE V0, 05 (does not skip)
		0x6105, // LD V1, 05
		0x5010, // SE V0, V1 (skips)
		0x0000,
		0x9010, // SNE V0, V1 (does not skip)
	)
	steps(t, vm, 6)
	test.ExpectEquality(t, vm.PC(), 0x210)
}

func TestJumps(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x6004, // LD V0, 04
		0xb300, // JP V0, 300
	)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.PC(), 0x304)

	vm = newVM(t, chip8.DefaultQuirks, 0x1abc)
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.PC(), 0xabc)
}

func TestCallReturn(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks, 0x2400)
	test.DemandSuccess(t, vm.Poke(0x400, 0x00))
	test.DemandSuccess(t, vm.Poke(0x401, 0xee))

	steps(t, vm, 1)
	test.ExpectEquality(t, vm.PC(), 0x400)
	test.ExpectEquality(t, vm.SP(), chip8.StackStart-2)

	steps(t, vm, 1)
	test.ExpectEquality(t, vm.PC(), 0x202)
	test.ExpectEquality(t, vm.SP(), chip8.StackStart)
}

func TestStackOverflow(t *testing.T) {
	// a subroutine that calls itself
	vm := newVM(t, chip8.DefaultQuirks, 0x2200)
	steps(t, vm, chip8.StackDepth)

	err := vm.Step()
	test.ExpectSuccess(t, errors.Is(err, chip8.ErrStackOverflow))
	test.ExpectEquality(t, vm.Fault(), err)

	// the interpreter remains faulted and does not execute
	pc := vm.PC()
	test.ExpectEquality(t, vm.Step(), err)
	test.ExpectEquality(t, vm.PC(), pc)

	// until it is reset
	vm.Reset()
	test.ExpectSuccess(t, vm.Fault())
}

func TestStackUnderflow(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks, 0x00ee)
	err := vm.Step()
	test.ExpectSuccess(t, errors.Is(err, chip8.ErrStackUnderflow))
}

func TestUnknownOpcodes(t *testing.T) {
	for _, op := range []uint16{0x0123, 0x5121, 0x8128, 0x9121, 0xe1ff, 0xf1ff} {
		vm := newVM(t, chip8.DefaultQuirks, op)
		err := vm.Step()
		test.ExpectSuccess(t, errors.Is(err, chip8.ErrUnknownOpcode), op)
		test.ExpectFailure(t, vm.Fault(), op)
	}
}

func TestNop(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks, 0xf075, 0xf085)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.PC(), 0x204)
}

func TestFetchOutOfRange(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks, 0x1fff)
	steps(t, vm, 1)
	err := vm.Step()
	test.ExpectSuccess(t, errors.Is(err, chip8.ErrMemoryAccess))
}

func TestDraw(t *testing.T) {
	e := []uint8{0xf0, 0x80, 0xf0, 0x80, 0xf0}

	vm := newVM(t, chip8.DefaultQuirks,
		0xa300, // LD I, 300
		0xd015, // DRW V0, V1, 5
		0xd015, // DRW V0, V1, 5
	)
	for i, b := range e {
		test.DemandSuccess(t, vm.Poke(0x300+uint16(i), b))
	}

	steps(t, vm, 2)
	for i, b := range e {
		test.ExpectEquality(t, peek(t, vm, 0xf00+uint16(8*i)), b, i)
	}
	test.ExpectEquality(t, vm.V(0xf), 0)

	// the frame buffer shows the sprite
	fb := vm.FrameBuffer()
	test.DemandEquality(t, len(fb), framebuffer.Size)
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 0, 0))
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 0, 3))
	test.ExpectFailure(t, framebuffer.IsPixelSet(fb, 1, 1))

	// drawing the sprite again erases it and sets the collision flag
	steps(t, vm, 1)
	for i := range e {
		test.ExpectEquality(t, peek(t, vm, 0xf00+uint16(8*i)), 0, i)
	}
	test.ExpectEquality(t, vm.V(0xf), 1)

	// but the frame buffer still shows the sprite from the previous frame
	fb = vm.FrameBuffer()
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 0, 0))
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 4, 3))
}

func TestDrawWrap(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x603e, // LD V0, 3e (62)
		0x611f, // LD V1, 1f (31)
		0xa300, // LD I, 300
		0xd012, // DRW V0, V1, 2
	)
	test.DemandSuccess(t, vm.Poke(0x300, 0xc1))
	test.DemandSuccess(t, vm.Poke(0x301, 0x80))
	steps(t, vm, 4)

	fb := vm.FrameBuffer()
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 31, 62))
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 31, 63))
	test.ExpectFailure(t, framebuffer.IsPixelSet(fb, 31, 0))
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 31, 5))

	// the second row wraps to the top of the display
	test.ExpectSuccess(t, framebuffer.IsPixelSet(fb, 0, 62))
}

func TestClearDisplay(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0xf029, // LD F, V0
		0xd005, // DRW V0, V0, 5
		0x00e0, // CLS
	)
	steps(t, vm, 2)
	test.ExpectSuccess(t, framebuffer.IsPixelSet(vm.FrameBuffer(), 0, 0))

	steps(t, vm, 1)
	for _, b := range vm.FrameBuffer() {
		test.DemandEquality(t, b, 0)
	}
	test.ExpectEquality(t, peek(t, vm, 0xf00), 0)
}

func TestKeypad(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x6005, // LD V0, 05
		0xe09e, // SKP V0
		0xe0a1, // SKNP V0
		0xe0a1, // SKNP V0
	)
	steps(t, vm, 2)
	test.ExpectEquality(t, vm.PC(), 0x204)

	vm.PressKey(5)
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.PC(), 0x206)
	vm.ReleaseKey(5)
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.PC(), 0x20a)
}

func TestWaitForKey(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks, 0xf30a)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.PC(), 0x200)

	vm.PressKey(0xb)
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.PC(), 0x202)
	test.ExpectEquality(t, vm.V(3), 0xb)
}

func TestTimers(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0x6003, // LD V0, 03
		0xf015, // LD DT, V0
		0xf018, // LD ST, V0
		0xf107, // LD V1, DT
	)
	steps(t, vm, 3)
	vm.DecrementTimers()
	steps(t, vm, 1)
	test.ExpectEquality(t, vm.V(1), 2)

	for i := 0; i < 5; i++ {
		vm.DecrementTimers()
	}
	delay, sound := vm.Timers()
	test.ExpectEquality(t, delay, 0)
	test.ExpectEquality(t, sound, 0)
}

func TestRandom(t *testing.T) {
	program := []uint16{
		0xc0ff, // RND V0, ff
		0xc10f, // RND V1, 0f
	}
	a := newVM(t, chip8.DefaultQuirks, program...)
	b := newVM(t, chip8.DefaultQuirks, program...)
	a.Seed(10)
	b.Seed(10)
	steps(t, a, 2)
	steps(t, b, 2)
	test.ExpectEquality(t, a.V(0), b.V(0))
	test.ExpectEquality(t, a.V(1)&0xf0, 0)
}

func TestAddI(t *testing.T) {
	vm := newVM(t, chip8.DefaultQuirks,
		0xa100, // LD I, 100
		0x6010, // LD V0, 10
		0xf01e, // ADD I, V0
	)
	steps(t, vm, 3)
	test.ExpectEquality(t, vm.I(), 0x110)
}

func TestDisassemble(t *testing.T) {
	test.ExpectEquality(t, chip8.Disassemble(0x00e0), "CLS")
	test.ExpectEquality(t, chip8.Disassemble(0xd015), "DRW  V0, V1, 5")
	test.ExpectEquality(t, chip8.Disassemble(0x8124), "ADD  V1, V2")
	test.ExpectEquality(t, chip8.Disassemble(0xa2f0), "LD   I, 2f0")
	test.ExpectEquality(t, chip8.Disassemble(0xf365), "LD   V3, [I]")
	test.ExpectEquality(t, chip8.Disassemble(0x0123), "DW   0123")
}
