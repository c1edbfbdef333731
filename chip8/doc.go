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

// Package chip8 is a CHIP-8 interpreter. It implements the Interpreter
// interface of the renderloop package and the HandleInput interface of the
// userinput package.
//
// Memory is 4096 bytes. The font is stored at 0x050 and programs are loaded
// at 0x200. The top of memory holds the display and the call stack:
//
//	0xf00 - 0xfff	the display as drawn by the program
//	0xe00 - 0xeff	the display as returned by FrameBuffer()
//	0xde0 - 0xdff	the call stack, growing downwards from 0xe00
//
// The display returned by FrameBuffer() is the previous frame combined with
// the current frame. Programs that erase and redraw a sprite between display
// refreshes would otherwise flicker.
//
// Faults, such as an unknown opcode or a stack overflow, are returned by
// Step() and remembered. Once faulted the interpreter will not execute any
// further instructions until it is Reset() or a new program is loaded.
package chip8
