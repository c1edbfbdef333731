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
	"fmt"
	"math"
)

// Stats summarises the frame rate samples in an FPSMeter.
type Stats struct {
	Latest  float64
	Average float64
	Min     float64
	Max     float64
}

// Lines formats the statistics for display. There is one line each for the
// latest, average, minimum and maximum frame rate, in that order. Values are
// rounded to the nearest integer.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("fps: %d", round(s.Latest)),
		fmt.Sprintf("avg of last %d: %d", WindowSize, round(s.Average)),
		fmt.Sprintf("min of last %d: %d", WindowSize, round(s.Min)),
		fmt.Sprintf("max of last %d: %d", WindowSize, round(s.Max)),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%.2f fps (avg %.2f, min %.2f, max %.2f)", s.Latest, s.Average, s.Min, s.Max)
}

func round(v float64) int {
	return int(math.Round(v))
}
