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

package gui

import (
	"sync"
	"time"
)

// Scheduler is a FrameScheduler for hosts that drive their own refresh
// cycle. The callback most recently given to RequestFrame() is held until
// the host calls Run().
type Scheduler struct {
	crit    sync.Mutex
	pending func(now time.Time)
}

// RequestFrame implements the renderloop.FrameScheduler interface. Only one
// callback is held at a time. A new request replaces any pending request.
func (sch *Scheduler) RequestFrame(callback func(now time.Time)) {
	sch.crit.Lock()
	defer sch.crit.Unlock()
	sch.pending = callback
}

// Pending returns true if a callback is waiting to be run.
func (sch *Scheduler) Pending() bool {
	sch.crit.Lock()
	defer sch.crit.Unlock()
	return sch.pending != nil
}

// Run the pending callback with the time of the refresh. The callback is
// removed before it is called so that it can request the next frame. Returns
// false if there was nothing to run.
func (sch *Scheduler) Run(now time.Time) bool {
	sch.crit.Lock()
	callback := sch.pending
	sch.pending = nil
	sch.crit.Unlock()

	if callback == nil {
		return false
	}
	callback(now)
	return true
}
