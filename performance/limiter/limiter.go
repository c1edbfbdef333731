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

// Package limiter paces hosts that have no display refresh of their own to
// synchronise with. The terminal host and the paced headless host use it as
// their source of frame callbacks.
//
// A new Limiter can be created with:
//
//	lmtr := limiter.NewLimiter(limiter.DefaultRate)
//	defer lmtr.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		now := lmtr.Wait()
//		frame(now)
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultRate is the refresh rate of a typical display.
const DefaultRate float32 = 60.0

// Limiter triggers a fixed number of times per second.
type Limiter struct {
	pulse *time.Ticker

	// the rate requested with SetRate()
	rate atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is in frames per second. A rate of zero or less is replaced by
// DefaultRate.
func NewLimiter(rate float32) *Limiter {
	lmtr := &Limiter{}
	if rate <= 0.0 {
		rate = DefaultRate
	}
	lmtr.rate.Store(rate)
	lmtr.pulse = time.NewTicker(period(rate))
	return lmtr
}

func period(rate float32) time.Duration {
	return time.Duration(float64(time.Second) / float64(rate))
}

// SetRate changes the rate at which the Limiter triggers.
func (lmtr *Limiter) SetRate(rate float32) {
	if rate <= 0.0 {
		rate = DefaultRate
	}
	lmtr.rate.Store(rate)
	lmtr.pulse.Reset(period(rate))
}

// Rate returns the current rate of the Limiter.
func (lmtr *Limiter) Rate() float32 {
	return lmtr.rate.Load().(float32)
}

// Wait blocks until the next trigger and returns the time of the trigger.
func (lmtr *Limiter) Wait() time.Time {
	return <-lmtr.pulse.C
}

// C returns the channel on which triggers are sent. Useful in select
// statements.
func (lmtr *Limiter) C() <-chan time.Time {
	return lmtr.pulse.C
}

// HasWaited returns true if a trigger is pending and consumes it. It does not
// block.
func (lmtr *Limiter) HasWaited() bool {
	select {
	case <-lmtr.pulse.C:
		return true
	default:
		return false
	}
}

// Stop the Limiter. No further triggers will be sent.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
}
