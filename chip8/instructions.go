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

package chip8

import (
	"github.com/jetsetilly/gopher8/framebuffer"
)

// execute a single instruction. the program counter has already been
// advanced past the instruction.
func (vm *VM) execute(opcode uint16) error {
	x := int(opcode>>8) & 0x0f
	y := int(opcode>>4) & 0x0f
	n := uint8(opcode & 0x000f)
	kk := uint8(opcode & 0x00ff)
	nnn := opcode & 0x0fff

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			vm.clearDisplay()
		case 0x00ee:
			return vm.ret()
		default:
			return ErrUnknownOpcode
		}

	case 0x1:
		vm.pc = nnn

	case 0x2:
		return vm.call(nnn)

	case 0x3:
		if vm.v[x] == kk {
			vm.pc += 2
		}

	case 0x4:
		if vm.v[x] != kk {
			vm.pc += 2
		}

	case 0x5:
		if n != 0 {
			return ErrUnknownOpcode
		}
		if vm.v[x] == vm.v[y] {
			vm.pc += 2
		}

	case 0x6:
		vm.v[x] = kk

	case 0x7:
		vm.v[x] += kk

	case 0x8:
		return vm.arithmetic(x, y, n)

	case 0x9:
		if n != 0 {
			return ErrUnknownOpcode
		}
		if vm.v[x] != vm.v[y] {
			vm.pc += 2
		}

	case 0xa:
		vm.i = nnn

	case 0xb:
		vm.pc = nnn + uint16(vm.v[0])

	case 0xc:
		vm.v[x] = uint8(vm.rand.Intn(256)) & kk

	case 0xd:
		return vm.draw(vm.v[x], vm.v[y], n)

	case 0xe:
		switch kk {
		case 0x9e:
			if vm.keypad[vm.v[x]&0x0f] {
				vm.pc += 2
			}
		case 0xa1:
			if !vm.keypad[vm.v[x]&0x0f] {
				vm.pc += 2
			}
		default:
			return ErrUnknownOpcode
		}

	case 0xf:
		return vm.misc(x, kk)
	}

	return nil
}

// the 8xyn instructions
func (vm *VM) arithmetic(x int, y int, n uint8) error {
	switch n {
	case 0x0:
		vm.v[x] = vm.v[y]
	case 0x1:
		vm.v[x] |= vm.v[y]
	case 0x2:
		vm.v[x] &= vm.v[y]
	case 0x3:
		vm.v[x] ^= vm.v[y]
	case 0x4:
		r := uint16(vm.v[x]) + uint16(vm.v[y])
		vm.setFlagThenResult(x, r > 0xff, uint8(r))
	case 0x5:
		vx, vy := vm.v[x], vm.v[y]
		vm.setFlagThenResult(x, vy > vx, vx-vy)
	case 0x6:
		src := vm.v[y]
		if vm.quirks.ShiftUsesVX {
			src = vm.v[x]
		}
		vm.setFlagThenResult(x, src&0x01 == 0x01, src>>1)
	case 0x7:
		vx, vy := vm.v[x], vm.v[y]
		vm.setFlagThenResult(x, vx > vy, vy-vx)
	case 0xe:
		src := vm.v[y]
		if vm.quirks.ShiftUsesVX {
			src = vm.v[x]
		}
		vm.setFlagThenResult(x, src&0x80 == 0x80, src<<1)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// the flag register is written before the result. if the destination is VF
// then the result is what remains in VF.
func (vm *VM) setFlagThenResult(x int, flag bool, result uint8) {
	if flag {
		vm.v[0xf] = 1
	} else {
		vm.v[0xf] = 0
	}
	vm.v[x] = result
}

// the Fxkk instructions
func (vm *VM) misc(x int, kk uint8) error {
	switch kk {
	case 0x07:
		vm.v[x] = vm.delay

	case 0x0a:
		// wait for a key. the instruction repeats until a key is down
		for k, down := range vm.keypad {
			if down {
				vm.v[x] = uint8(k)
				return nil
			}
		}
		vm.pc -= 2

	case 0x15:
		vm.delay = vm.v[x]

	case 0x18:
		vm.sound = vm.v[x]

	case 0x1e:
		vm.i += uint16(vm.v[x])

	case 0x29:
		vm.i = FontAddress + uint16(vm.v[x]&0x0f)*glyphSize

	case 0x33:
		if int(vm.i)+2 >= MemorySize {
			return ErrMemoryAccess
		}
		v := vm.v[x]
		vm.memory[vm.i] = v / 100
		vm.memory[vm.i+1] = (v % 100) / 10
		vm.memory[vm.i+2] = v % 10

	case 0x55:
		if int(vm.i)+x >= MemorySize {
			return ErrMemoryAccess
		}
		copy(vm.memory[vm.i:], vm.v[:x+1])
		if !vm.quirks.LoadStoreKeepsI {
			vm.i += uint16(x + 1)
		}

	case 0x65:
		if int(vm.i)+x >= MemorySize {
			return ErrMemoryAccess
		}
		copy(vm.v[:x+1], vm.memory[vm.i:])
		if !vm.quirks.LoadStoreKeepsI {
			vm.i += uint16(x + 1)
		}

	case 0x75, 0x85:
		// flag register storage is not supported. treated as no operation

	default:
		return ErrUnknownOpcode
	}

	return nil
}

func (vm *VM) call(address uint16) error {
	if vm.sp <= stackLimit {
		return ErrStackOverflow
	}
	vm.sp -= 2
	vm.memory[vm.sp] = uint8(vm.pc >> 8)
	vm.memory[vm.sp+1] = uint8(vm.pc)
	vm.pc = address
	return nil
}

func (vm *VM) ret() error {
	if vm.sp >= StackStart {
		return ErrStackUnderflow
	}
	vm.pc = uint16(vm.memory[vm.sp])<<8 | uint16(vm.memory[vm.sp+1])
	vm.sp += 2
	return nil
}

func (vm *VM) clearDisplay() {
	clear(vm.memory[displayAddress:])
}

// draw the n byte sprite at I to the display. sprites wrap around the edges
// of the display. VF is set if any lit pixel is erased.
func (vm *VM) draw(vx uint8, vy uint8, n uint8) error {
	if int(vm.i)+int(n) > MemorySize {
		return ErrMemoryAccess
	}

	current := vm.memory[frameAddress:]
	display := vm.memory[displayAddress:frameAddress]

	// the previous frame is kept in the display area so that it can be
	// combined with the new frame
	copy(display, current)

	vm.v[0xf] = 0
	for row := 0; row < int(n); row++ {
		sprite := vm.memory[int(vm.i)+row]
		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			b, mask := framebuffer.Locate((int(vy)+row)%framebuffer.Height, (int(vx)+col)%framebuffer.Width)
			if current[b]&mask == mask {
				vm.v[0xf] = 1
			}
			current[b] ^= mask
		}
	}

	for i := range display {
		display[i] |= current[i]
	}

	return nil
}
