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
	"fmt"
	"strings"
)

// Memory layout.
const (
	MemorySize     = 0x1000
	FontAddress    = 0x050
	ProgramAddress = 0x200

	// the stack grows down from the start of the display area
	StackStart = 0xe00
	StackDepth = 16
	stackLimit = StackStart - StackDepth*2

	// two copies of the display. see package documentation
	displayAddress = 0xe00
	frameAddress   = 0xf00

	// MaxProgramSize is the largest program that will fit below the stack
	MaxProgramSize = stackLimit - ProgramAddress
)

// size of each glyph in the font
const glyphSize = 5

var font = [16 * glyphSize]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Peek returns the value at the address without side effects.
func (vm *VM) Peek(address uint16) (uint8, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("%w (%04x)", ErrMemoryAccess, address)
	}
	return vm.memory[address], nil
}

// Poke sets the value at the address.
func (vm *VM) Poke(address uint16, value uint8) error {
	if int(address) >= MemorySize {
		return fmt.Errorf("%w (%04x)", ErrMemoryAccess, address)
	}
	vm.memory[address] = value
	return nil
}

// Dump returns a hex listing of memory between the two addresses.
func (vm *VM) Dump(from uint16, to uint16) string {
	to = min(to, MemorySize-1)
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for row := from &^ 0x0f; row <= to; row += 16 {
		s.WriteString(fmt.Sprintf("%03x |", row))
		for col := uint16(0); col < 16; col++ {
			s.WriteString(fmt.Sprintf(" %02x", vm.memory[row+col]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
