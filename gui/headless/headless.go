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

// Package headless is a host environment for the render loop with no
// display. It is used for performance measurement and for producing digests
// and screenshots of a program's output.
//
// Frames are either paced by a limiter, in the same way as an interactive
// host, or driven as quickly as possible with a simulated clock that
// advances by one refresh period every frame. The simulated clock means the
// frame rate readout is always the requested rate.
package headless

import (
	"image/color"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"
)

// Headless is an implementation of the gui.Host interface with no output.
type Headless struct {
	gui.Scheduler

	handler gui.EventHandler

	// lmtr is nil if the clock is simulated
	lmtr   *limiter.Limiter
	period time.Duration
	clock  time.Time

	readout []string
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. If paced is false then the clock is simulated, starting at the
// supplied time.
func NewHeadless(rate float32, paced bool, start time.Time) *Headless {
	if rate <= 0.0 {
		rate = limiter.DefaultRate
	}

	hl := &Headless{
		period: time.Duration(float64(time.Second) / float64(rate)),
		clock:  start,
	}

	if paced {
		hl.lmtr = limiter.NewLimiter(rate)
	}

	return hl
}

// SetEventHandler implements the gui.Host interface.
func (hl *Headless) SetEventHandler(handler gui.EventHandler) {
	hl.handler = handler
}

// Send an event to the event handler as though it came from a user.
func (hl *Headless) Send(ev userinput.Event) {
	if hl.handler != nil {
		hl.handler(ev)
	}
}

// FillRect implements the renderloop.Canvas interface.
func (hl *Headless) FillRect(_, _, _, _ int, _ color.RGBA) error {
	return nil
}

// EndFrame implements the renderloop.Canvas interface.
func (hl *Headless) EndFrame() error {
	return nil
}

// SetReadout implements the renderloop.Readout interface.
func (hl *Headless) SetReadout(lines []string) {
	hl.readout = append(hl.readout[:0], lines...)
}

// Readout returns the most recent readout.
func (hl *Headless) Readout() []string {
	return hl.readout
}

// Now returns the time of the most recent frame.
func (hl *Headless) Now() time.Time {
	return hl.clock
}

func (hl *Headless) tick() time.Time {
	if hl.lmtr != nil {
		hl.clock = hl.lmtr.Wait()
	} else {
		hl.clock = hl.clock.Add(hl.period)
	}
	return hl.clock
}

// RunFrames runs up to the number of frames requested. It returns early if
// no frame has been requested. Returns the number of frames run.
func (hl *Headless) RunFrames(n int) int {
	var i int
	for i = 0; i < n; i++ {
		if !hl.Pending() {
			break // for loop
		}
		hl.Run(hl.tick())
	}
	return i
}

// RunFor runs frames until the duration has elapsed on the host's clock or
// no frame has been requested. Returns the number of frames run.
func (hl *Headless) RunFor(d time.Duration) int {
	end := hl.clock.Add(d)
	var i int
	for hl.Pending() && hl.clock.Before(end) {
		hl.Run(hl.tick())
		i++
	}
	return i
}

// Destroy releases the resources used by the host.
func (hl *Headless) Destroy() {
	if hl.lmtr != nil {
		hl.lmtr.Stop()
	}
}
