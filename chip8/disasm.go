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

import "fmt"

// Disassemble returns a human readable form of the opcode. Opcodes that are
// not recognised are returned as a data directive.
func Disassemble(opcode uint16) string {
	x := (opcode >> 8) & 0x0f
	y := (opcode >> 4) & 0x0f
	n := opcode & 0x000f
	kk := opcode & 0x00ff
	nnn := opcode & 0x0fff

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			return "CLS"
		case 0x00ee:
			return "RET"
		}
	case 0x1:
		return fmt.Sprintf("JP   %03x", nnn)
	case 0x2:
		return fmt.Sprintf("CALL %03x", nnn)
	case 0x3:
		return fmt.Sprintf("SE   V%X, %02x", x, kk)
	case 0x4:
		return fmt.Sprintf("SNE  V%X, %02x", x, kk)
	case 0x5:
		if n == 0 {
			return fmt.Sprintf("SE   V%X, V%X", x, y)
		}
	case 0x6:
		return fmt.Sprintf("LD   V%X, %02x", x, kk)
	case 0x7:
		return fmt.Sprintf("ADD  V%X, %02x", x, kk)
	case 0x8:
		var op string
		switch n {
		case 0x0:
			op = "LD"
		case 0x1:
			op = "OR"
		case 0x2:
			op = "AND"
		case 0x3:
			op = "XOR"
		case 0x4:
			op = "ADD"
		case 0x5:
			op = "SUB"
		case 0x6:
			op = "SHR"
		case 0x7:
			op = "SUBN"
		case 0xe:
			op = "SHL"
		}
		if op != "" {
			return fmt.Sprintf("%-4s V%X, V%X", op, x, y)
		}
	case 0x9:
		if n == 0 {
			return fmt.Sprintf("SNE  V%X, V%X", x, y)
		}
	case 0xa:
		return fmt.Sprintf("LD   I, %03x", nnn)
	case 0xb:
		return fmt.Sprintf("JP   V0, %03x", nnn)
	case 0xc:
		return fmt.Sprintf("RND  V%X, %02x", x, kk)
	case 0xd:
		return fmt.Sprintf("DRW  V%X, V%X, %X", x, y, n)
	case 0xe:
		switch kk {
		case 0x9e:
			return fmt.Sprintf("SKP  V%X", x)
		case 0xa1:
			return fmt.Sprintf("SKNP V%X", x)
		}
	case 0xf:
		switch kk {
		case 0x07:
			return fmt.Sprintf("LD   V%X, DT", x)
		case 0x0a:
			return fmt.Sprintf("LD   V%X, K", x)
		case 0x15:
			return fmt.Sprintf("LD   DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("LD   ST, V%X", x)
		case 0x1e:
			return fmt.Sprintf("ADD  I, V%X", x)
		case 0x29:
			return fmt.Sprintf("LD   F, V%X", x)
		case 0x33:
			return fmt.Sprintf("LD   B, V%X", x)
		case 0x55:
			return fmt.Sprintf("LD   [I], V%X", x)
		case 0x65:
			return fmt.Sprintf("LD   V%X, [I]", x)
		case 0x75, 0x85:
			return "NOP"
		}
	}

	return fmt.Sprintf("DW   %04x", opcode)
}
