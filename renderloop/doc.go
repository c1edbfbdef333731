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

// Package renderloop paces the interpreter against the display refresh of the
// host.
//
// The host provides a FrameScheduler, which calls back once per display
// refresh. On every callback the Loop:
//
//  1. steps the interpreter StepsPerFrame times
//  2. decrements the interpreter timers TimerDecrementsPerFrame times
//  3. repaints every cell of the display from a fresh view of the framebuffer
//  4. samples the frame rate and updates the readout
//  5. asks the FrameScheduler for the next callback
//
// All of this happens inside the callback. The Loop never sleeps and never
// runs more than one frame per callback. If the host stops calling back for a
// while the Loop simply carries on when the callbacks resume.
//
// The framebuffer view is requested from the interpreter every frame and is
// never kept beyond the frame in which it was requested.
//
// Once the interpreter reports a fault the Loop moves to the Halted state. It
// stops stepping the interpreter but continues to paint the display, which
// will show the last frame before the fault, and adds the fault to the
// readout.
//
// Stop() ends the Loop. It can be called from any goroutine.
package renderloop
