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

// Package framebuffer decodes the bit-packed monochrome display memory of the
// interpreter.
//
// The display is Width pixels wide and Height pixels high. Pixels are stored
// one bit each, row-major, with the most significant bit of each byte being
// the leftmost pixel:
//
//	idx  = row*Width + col
//	byte = idx / 8
//	mask = 0x80 >> (idx % 8)
//
// The functions in this package do not check their arguments. A row or
// column outside the display, or a buffer shorter than Size, is a defect in
// the caller and will cause the usual index out of range panic.
package framebuffer
