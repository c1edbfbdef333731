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

package termplay

import (
	"image/color"
	"io"
	"strings"
)

// ANSI sequences.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	clearLine   = "\x1b[K"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// the number of terminal rows reserved for the readout
const readoutRows = 4

// half-block characters indexed by the top and bottom pixel
var blocks = [2][2]string{
	{" ", "▄"},
	{"▀", "█"},
}

type screen struct {
	width  int
	height int
	pixels []bool

	readout []string

	// reused every frame
	sb strings.Builder
}

func newScreen(width, height int) *screen {
	return &screen{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// any colour with more red than half brightness is drawn as a lit pixel
func lit(col color.RGBA) bool {
	return col.R >= 0x80
}

func (scr *screen) fill(x, y, w, h int, col color.RGBA) {
	on := lit(col)
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, scr.width), min(y+h, scr.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			scr.pixels[py*scr.width+px] = on
		}
	}
}

func (scr *screen) pixel(x, y int) int {
	if y >= scr.height || !scr.pixels[y*scr.width+x] {
		return 0
	}
	return 1
}

// draw the display and the readout. the cursor is moved to the top-left of
// the terminal rather than clearing the terminal, to prevent flicker
func (scr *screen) draw(w io.Writer) {
	scr.sb.Reset()
	scr.sb.WriteString(cursorHome)

	for y := 0; y < scr.height; y += 2 {
		for x := 0; x < scr.width; x++ {
			scr.sb.WriteString(blocks[scr.pixel(x, y)][scr.pixel(x, y+1)])
		}
		scr.sb.WriteString("\r\n")
	}

	for i := 0; i < readoutRows; i++ {
		if i < len(scr.readout) {
			scr.sb.WriteString(scr.readout[i])
		}
		scr.sb.WriteString(clearLine)
		scr.sb.WriteString("\r\n")
	}

	io.WriteString(w, scr.sb.String())
}
