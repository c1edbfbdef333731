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

package performance

import (
	"time"
)

// WindowSize is the number of samples kept by the FPSMeter.
const WindowSize = 100

// The elapsed time between samples is clamped to this range before the frame
// rate is calculated. A host that stops calling the frame callback for a
// while (a minimised window for example) produces one long frame. Without the
// upper bound that frame would drag the minimum down for the next WindowSize
// frames. The lower bound prevents division by zero.
const (
	MinElapsed = time.Millisecond
	MaxElapsed = time.Second
)

// FPSMeter measures the frame rate over the last WindowSize frames.
type FPSMeter struct {
	last time.Time

	// samples are stored in a ring. head is the index of the oldest sample
	window [WindowSize]float64
	head   int
	count  int

	stats Stats
}

// NewFPSMeter is the preferred method of initialisation for the FPSMeter type.
// The timestamp is used as the previous frame time for the first sample.
func NewFPSMeter(now time.Time) *FPSMeter {
	return &FPSMeter{
		last: now,
	}
}

// Sample adds a new frame rate measurement and returns the updated
// statistics.
func (m *FPSMeter) Sample(now time.Time) Stats {
	elapsed := now.Sub(m.last)
	m.last = now

	elapsed = max(elapsed, MinElapsed)
	elapsed = min(elapsed, MaxElapsed)

	fps := 1000.0 / (float64(elapsed) / float64(time.Millisecond))

	if m.count < WindowSize {
		m.window[(m.head+m.count)%WindowSize] = fps
		m.count++
	} else {
		m.window[m.head] = fps
		m.head = (m.head + 1) % WindowSize
	}

	// aggregate values are recalculated from the window every time
	var sum float64
	m.stats = Stats{
		Latest: fps,
		Min:    fps,
		Max:    fps,
	}
	for i := 0; i < m.count; i++ {
		v := m.window[(m.head+i)%WindowSize]
		sum += v
		m.stats.Min = min(m.stats.Min, v)
		m.stats.Max = max(m.stats.Max, v)
	}
	m.stats.Average = sum / float64(m.count)

	return m.stats
}

// Stats returns the statistics as of the most recent sample. The zero value
// is returned if no samples have been made.
func (m *FPSMeter) Stats() Stats {
	return m.stats
}

// Len returns the number of samples in the window.
func (m *FPSMeter) Len() int {
	return m.count
}

// Window returns a copy of the samples in the window, oldest first.
func (m *FPSMeter) Window() []float64 {
	w := make([]float64, m.count)
	for i := range w {
		w[i] = m.window[(m.head+i)%WindowSize]
	}
	return w
}
