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
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/framebuffer"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance"
)

// The amount of work done by the interpreter in every frame.
const (
	StepsPerFrame           = 10
	TimerDecrementsPerFrame = 1
)

// Colours used for lit and unlit cells.
var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// ErrStarted is returned by Start() if the Loop has already been started.
var ErrStarted = errors.New("renderloop: already started")

// Loop connects the interpreter to the host.
type Loop struct {
	interp   Interpreter
	canvas   Canvas
	readout  Readout
	sched    FrameScheduler
	cellSize int

	// meter is created when the Loop is started
	meter *performance.FPSMeter

	// state is a govern.State
	state   atomic.Int32
	stopped atomic.Bool
	frames  atomic.Int64

	done     chan struct{}
	doneOnce sync.Once

	crit  sync.Mutex
	fault error
	err   error
	stats performance.Stats
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// readout can be nil. A cellSize of less than one is treated as one.
func NewLoop(interp Interpreter, canvas Canvas, readout Readout, sched FrameScheduler, cellSize int) *Loop {
	return &Loop{
		interp:   interp,
		canvas:   canvas,
		readout:  readout,
		sched:    sched,
		cellSize: max(cellSize, 1),
		done:     make(chan struct{}),
	}
}

// Dimensions returns the size of the painted area in host pixels.
func (l *Loop) Dimensions() (int, int) {
	return framebuffer.Width * l.cellSize, framebuffer.Height * l.cellSize
}

// Start the Loop. The time is used as the starting point for the frame rate
// measurement.
func (l *Loop) Start(now time.Time) error {
	if l.State() != govern.Initialising {
		return ErrStarted
	}
	l.meter = performance.NewFPSMeter(now)
	l.setState(govern.Running)
	l.sched.RequestFrame(l.frame)
	return nil
}

// Stop the Loop. No further frames will be run. Safe to call from any
// goroutine and safe to call more than once.
func (l *Loop) Stop() {
	l.stopped.Store(true)
	l.end()
}

// Done returns a channel that is closed when the Loop has ended.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// State returns the current state of the Loop.
func (l *Loop) State() govern.State {
	return govern.State(l.state.Load())
}

// Frames returns the number of frames that have been completed.
func (l *Loop) Frames() int {
	return int(l.frames.Load())
}

// Fault returns the interpreter fault that caused the Loop to halt.
func (l *Loop) Fault() error {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.fault
}

// Err returns the error that caused the Loop to end. Returns nil if the Loop
// ended because of a call to Stop() or has not ended.
func (l *Loop) Err() error {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.err
}

// Stats returns the frame rate statistics as of the most recent frame.
func (l *Loop) Stats() performance.Stats {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.stats
}

// Window returns the frame rate samples, oldest first. Only safe to call
// once the Loop has ended.
func (l *Loop) Window() []float64 {
	if l.meter == nil {
		return nil
	}
	return l.meter.Window()
}

func (l *Loop) setState(state govern.State) {
	for {
		from := l.state.Load()
		if !govern.Transition(govern.State(from), state) {
			return
		}
		if l.state.CompareAndSwap(from, int32(state)) {
			return
		}
	}
}

func (l *Loop) end() {
	l.setState(govern.Ending)
	l.doneOnce.Do(func() {
		close(l.done)
	})
}

func (l *Loop) halt(fault error) {
	l.crit.Lock()
	l.fault = fault
	l.crit.Unlock()

	l.setState(govern.Halted)
	logger.Logf(logger.Allow, "renderloop", "halted: %v", fault)
}

// frame is the callback given to the FrameScheduler.
func (l *Loop) frame(now time.Time) {
	if l.stopped.Load() {
		return
	}

	if l.State() == govern.Running {
		l.step()
	}

	err := l.paint()
	if err != nil {
		l.crit.Lock()
		l.err = fmt.Errorf("renderloop: %w", err)
		l.crit.Unlock()
		l.stopped.Store(true)
		l.end()
		return
	}

	stats := l.meter.Sample(now)
	l.crit.Lock()
	l.stats = stats
	fault := l.fault
	l.crit.Unlock()

	if l.readout != nil {
		lines := stats.Lines()
		if fault != nil {
			lines = append(lines, fmt.Sprintf("halted: %v", fault))
		}
		l.readout.SetReadout(lines)
	}

	l.frames.Add(1)

	if l.stopped.Load() {
		return
	}
	l.sched.RequestFrame(l.frame)
}

// step runs one frame's worth of interpreter work. a fault part way through
// abandons the remaining steps and the timer decrement.
func (l *Loop) step() {
	if fault := l.interp.Fault(); fault != nil {
		l.halt(fault)
		return
	}

	for i := 0; i < StepsPerFrame; i++ {
		if err := l.interp.Step(); err != nil {
			l.halt(err)
			return
		}
	}

	for i := 0; i < TimerDecrementsPerFrame; i++ {
		l.interp.DecrementTimers()
	}
}

// paint every cell of the display, row by row.
func (l *Loop) paint() error {
	buffer := l.interp.FrameBuffer()

	for row := 0; row < framebuffer.Height; row++ {
		for col := 0; col < framebuffer.Width; col++ {
			c := Black
			if framebuffer.IsPixelSet(buffer, row, col) {
				c = White
			}
			err := l.canvas.FillRect(col*l.cellSize, row*l.cellSize, l.cellSize, l.cellSize, c)
			if err != nil {
				return err
			}
		}
	}

	return l.canvas.EndFrame()
}
