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

package framebuffer

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Size is the number of bytes required to hold one frame.
const Size = Width * Height / 8

// Index returns the linear pixel index for the pixel at row and col.
func Index(row int, col int) int {
	return row*Width + col
}

// Locate returns the byte in the buffer and the mask within that byte for the
// pixel at row and col.
func Locate(row int, col int) (int, uint8) {
	idx := Index(row, col)
	return idx / 8, 0x80 >> (idx % 8)
}

// IsPixelSet returns true if the pixel at row and col is lit.
func IsPixelSet(buffer []byte, row int, col int) bool {
	b, mask := Locate(row, col)
	return buffer[b]&mask == mask
}
