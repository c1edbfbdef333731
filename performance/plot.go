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
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// dimensions of the image created by PlotWindow()
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PlotWindow draws the frame rate samples as a line chart and writes it to
// the io.Writer as a PNG image. The samples are expected to be in arrival
// order, as returned by FPSMeter.Window().
func PlotWindow(w io.Writer, window []float64) error {
	if len(window) == 0 {
		return errors.New("performance: no samples to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frame rate (last %d frames)", len(window))
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "fps"
	p.Y.Min = 0

	xys := make(plotter.XYs, len(window))
	for i, v := range window {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	p.Add(line)

	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	_, err = wt.WriteTo(w)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
