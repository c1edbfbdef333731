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

package renderloop

import (
	"image/color"
	"time"
)

// Interpreter is the part of the interpreter used by the Loop.
type Interpreter interface {
	// Step executes one instruction. A non-nil error means the interpreter
	// has faulted
	Step() error

	// DecrementTimers decrements the delay and sound timers by one
	DecrementTimers()

	// FrameBuffer returns a view of the current display memory. The view is
	// only valid until the next call to Step()
	FrameBuffer() []byte

	// Fault returns the error that caused the interpreter to stop or nil if
	// it is still running
	Fault() error
}

// Canvas is the painting surface of the host.
type Canvas interface {
	FillRect(x, y, w, h int, col color.RGBA) error

	// EndFrame is called once all cells of the display have been painted
	EndFrame() error
}

// Readout displays the lines of text produced by the Loop every frame.
type Readout interface {
	SetReadout(lines []string)
}

// FrameScheduler is implemented by the host. RequestFrame() arranges for the
// callback to be called once, at the time of the next display refresh. The
// time passed to the callback is the time of that refresh.
type FrameScheduler interface {
	RequestFrame(callback func(now time.Time))
}
