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

package renderloop_test

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/framebuffer"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/renderloop"
	"github.com/jetsetilly/gopher8/test"
)

// calls to the interpreter and canvas are recorded in the same journal so
// that the order of operations can be checked
type journal struct {
	entries []string
}

func (j *journal) add(s string) {
	j.entries = append(j.entries, s)
}

type interpreter struct {
	j *journal

	// the step number on which to fault. zero means never
	faultOn int
	steps   int
	fault   error

	// the framebuffer returned by the next call to FrameBuffer()
	next []byte
}

func (i *interpreter) Step() error {
	i.j.add("step")
	i.steps++
	if i.faultOn > 0 && i.steps >= i.faultOn {
		i.fault = errors.New("unknown opcode")
		return i.fault
	}
	return nil
}

func (i *interpreter) DecrementTimers() {
	i.j.add("timers")
}

func (i *interpreter) FrameBuffer() []byte {
	i.j.add("framebuffer")
	b := make([]byte, framebuffer.Size)
	copy(b, i.next)
	return b
}

func (i *interpreter) Fault() error {
	return i.fault
}

type rect struct {
	x, y, w, h int
	col        color.RGBA
}

type canvas struct {
	j     *journal
	rects []rect
	err   error
}

func (c *canvas) FillRect(x, y, w, h int, col color.RGBA) error {
	if c.err != nil {
		return c.err
	}
	c.j.add("fill")
	c.rects = append(c.rects, rect{x: x, y: y, w: w, h: h, col: col})
	return nil
}

func (c *canvas) EndFrame() error {
	c.j.add("endframe")
	return nil
}

type readout struct {
	lines  []string
	onRead func()
}

func (r *readout) SetReadout(lines []string) {
	r.lines = lines
	if r.onRead != nil {
		r.onRead()
	}
}

type scheduler struct {
	callback func(time.Time)
	requests int
}

func (s *scheduler) RequestFrame(callback func(time.Time)) {
	s.callback = callback
	s.requests++
}

// run the pending callback. the callback is cleared before being called so
// that a callback that does not reschedule leaves nothing pending
func (s *scheduler) run(now time.Time) bool {
	cb := s.callback
	s.callback = nil
	if cb == nil {
		return false
	}
	cb(now)
	return true
}

type fixture struct {
	j       *journal
	interp  *interpreter
	canvas  *canvas
	readout *readout
	sched   *scheduler
	loop    *renderloop.Loop
	now     time.Time
}

func newFixture(t *testing.T, cellSize int) *fixture {
	t.Helper()
	f := &fixture{j: &journal{}}
	f.interp = &interpreter{j: f.j}
	f.canvas = &canvas{j: f.j}
	f.readout = &readout{}
	f.sched = &scheduler{}
	f.loop = renderloop.NewLoop(f.interp, f.canvas, f.readout, f.sched, cellSize)
	f.now = time.Unix(1000, 0)
	test.DemandSuccess(t, f.loop.Start(f.now))
	return f
}

func (f *fixture) frame() bool {
	f.now = f.now.Add(16 * time.Millisecond)
	return f.sched.run(f.now)
}

func TestStart(t *testing.T) {
	f := newFixture(t, 10)
	test.ExpectEquality(t, f.loop.State(), govern.Running)
	test.ExpectEquality(t, f.sched.requests, 1)
	test.ExpectEquality(t, len(f.j.entries), 0)
	test.ExpectEquality(t, f.loop.Start(f.now), renderloop.ErrStarted)

	w, h := f.loop.Dimensions()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 320)
}

func TestFrameOrder(t *testing.T) {
	f := newFixture(t, 10)
	test.DemandSuccess(t, f.frame())

	var expected []string
	for i := 0; i < renderloop.StepsPerFrame; i++ {
		expected = append(expected, "step")
	}
	for i := 0; i < renderloop.TimerDecrementsPerFrame; i++ {
		expected = append(expected, "timers")
	}
	expected = append(expected, "framebuffer")
	for i := 0; i < framebuffer.Width*framebuffer.Height; i++ {
		expected = append(expected, "fill")
	}
	expected = append(expected, "endframe")

	test.DemandEquality(t, len(f.j.entries), len(expected))
	for i := range expected {
		test.ExpectEquality(t, f.j.entries[i], expected[i], i)
	}

	// the next frame has been requested
	test.ExpectEquality(t, f.sched.requests, 2)
	test.ExpectEquality(t, f.loop.Frames(), 1)
}

func TestPaintGeometry(t *testing.T) {
	f := newFixture(t, 10)
	f.interp.next = make([]byte, framebuffer.Size)
	f.interp.next[0] = 0x80
	f.interp.next[framebuffer.Size-1] = 0x01
	test.DemandSuccess(t, f.frame())

	test.DemandEquality(t, len(f.canvas.rects), framebuffer.Width*framebuffer.Height)

	// row-major order
	for i, r := range f.canvas.rects {
		row := i / framebuffer.Width
		col := i % framebuffer.Width
		test.ExpectEquality(t, r.x, col*10, i)
		test.ExpectEquality(t, r.y, row*10, i)
		test.ExpectEquality(t, r.w, 10, i)
		test.ExpectEquality(t, r.h, 10, i)

		switch i {
		case 0, len(f.canvas.rects) - 1:
			test.ExpectEquality(t, r.col, renderloop.White, i)
		default:
			test.ExpectEquality(t, r.col, renderloop.Black, i)
		}
	}

	last := f.canvas.rects[len(f.canvas.rects)-1]
	test.ExpectEquality(t, last.x, 630)
	test.ExpectEquality(t, last.y, 310)
}

func TestFreshFrameBuffer(t *testing.T) {
	f := newFixture(t, 1)

	f.interp.next = []byte{0x80}
	test.DemandSuccess(t, f.frame())
	test.ExpectEquality(t, f.canvas.rects[0].col, renderloop.White)

	// the second frame must see the interpreter's new display memory
	f.canvas.rects = f.canvas.rects[:0]
	f.interp.next = []byte{0x00}
	test.DemandSuccess(t, f.frame())
	test.ExpectEquality(t, f.canvas.rects[0].col, renderloop.Black)

	n := 0
	for _, e := range f.j.entries {
		if e == "framebuffer" {
			n++
		}
	}
	test.ExpectEquality(t, n, 2)
}

func TestReadout(t *testing.T) {
	f := newFixture(t, 1)
	test.DemandSuccess(t, f.frame())

	test.DemandEquality(t, len(f.readout.lines), 4)
	test.ExpectEquality(t, f.readout.lines[0], "fps: 63")
	test.ExpectEquality(t, f.readout.lines[1], "avg of last 100: 63")
	test.ExpectEquality(t, f.loop.Stats().Latest, 62.5)
}

func TestStop(t *testing.T) {
	f := newFixture(t, 1)
	test.DemandSuccess(t, f.frame())
	test.DemandEquality(t, f.sched.requests, 2)

	f.loop.Stop()
	test.ExpectEquality(t, f.loop.State(), govern.Ending)
	f.loop.Stop()

	// the pending callback does nothing
	l := len(f.j.entries)
	test.DemandSuccess(t, f.frame())
	test.ExpectEquality(t, len(f.j.entries), l)
	test.ExpectEquality(t, f.sched.requests, 2)
	test.ExpectEquality(t, f.loop.Frames(), 1)
	test.ExpectSuccess(t, f.loop.Err())

	select {
	case <-f.loop.Done():
	default:
		t.Errorf("done channel not closed after Stop()")
	}
}

func TestStopDuringFrame(t *testing.T) {
	f := newFixture(t, 1)
	f.readout.onRead = f.loop.Stop

	// the frame completes but the next frame is not requested
	test.DemandSuccess(t, f.frame())
	test.ExpectEquality(t, f.sched.requests, 1)
	test.ExpectEquality(t, f.loop.Frames(), 1)
	test.ExpectFailure(t, f.frame())
}

func TestFaultDuringFrame(t *testing.T) {
	f := newFixture(t, 1)
	f.interp.faultOn = 3
	test.DemandSuccess(t, f.frame())

	// the remaining steps and the timer decrement were abandoned but the
	// display was still painted
	steps := 0
	for _, e := range f.j.entries {
		test.ExpectInequality(t, e, "timers")
		if e == "step" {
			steps++
		}
	}
	test.ExpectEquality(t, steps, 3)
	test.ExpectEquality(t, len(f.canvas.rects), framebuffer.Width*framebuffer.Height)

	test.ExpectEquality(t, f.loop.State(), govern.Halted)
	test.ExpectFailure(t, f.loop.Fault())
	test.DemandEquality(t, len(f.readout.lines), 5)
	test.ExpectEquality(t, f.readout.lines[4], "halted: unknown opcode")

	// following frames do not call the interpreter except for the display
	f.j.entries = f.j.entries[:0]
	test.DemandSuccess(t, f.frame())
	for _, e := range f.j.entries {
		test.ExpectInequality(t, e, "step")
		test.ExpectInequality(t, e, "timers")
	}
	test.ExpectEquality(t, f.j.entries[0], "framebuffer")
	test.ExpectEquality(t, f.sched.requests, 3)
}

func TestAlreadyFaulted(t *testing.T) {
	f := newFixture(t, 1)
	f.interp.fault = errors.New("stack overflow")
	test.DemandSuccess(t, f.frame())

	test.ExpectEquality(t, f.interp.steps, 0)
	test.ExpectEquality(t, f.loop.State(), govern.Halted)
	test.ExpectSuccess(t, strings.HasPrefix(f.readout.lines[4], "halted: "))
}

func TestCanvasError(t *testing.T) {
	f := newFixture(t, 1)
	f.canvas.err = errors.New("window closed")
	test.DemandSuccess(t, f.frame())

	test.ExpectEquality(t, f.loop.State(), govern.Ending)
	test.ExpectFailure(t, f.loop.Err())
	test.ExpectEquality(t, f.sched.requests, 1)
	test.ExpectEquality(t, f.loop.Frames(), 0)
}

func TestCanvases(t *testing.T) {
	j := &journal{}
	a := &canvas{j: j}
	b := &canvas{j: j}
	c := renderloop.Canvases(a, b)

	test.ExpectSuccess(t, c.FillRect(1, 2, 3, 4, renderloop.White))
	test.ExpectSuccess(t, c.EndFrame())
	test.ExpectEquality(t, len(a.rects), 1)
	test.ExpectEquality(t, len(b.rects), 1)
	test.ExpectEquality(t, fmt.Sprint(j.entries), "[fill fill endframe endframe]")

	a.err = errors.New("test")
	test.ExpectFailure(t, c.FillRect(1, 2, 3, 4, renderloop.White))
	test.ExpectEquality(t, len(b.rects), 1)
}
