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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/framebuffer"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/headless"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/renderloop"
	"github.com/jetsetilly/gopher8/screenshot"
	"github.com/jetsetilly/gopher8/statsview"
)

func perform(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	frames := md.AddInt("frames", 600, "number of frames to run")
	paced := md.AddBool("paced", false, "run frames at the display refresh rate")
	profile := md.AddString("profile", "none", "run performance profilers (CPU, MEM, TRACE, ALL)")
	plot := md.AddString("plot", "", "save a graph of the frame rate to a PNG file")
	useDigest := md.AddBool("digest", false, "print a digest of the display output")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG or JPEG file")
	scale := md.AddInt("scale", 1, "size of each display pixel in the screenshot")
	memoryGraph := md.AddString("memviz", "", "save a graph of the interpreter state to a DOT file")
	stats := md.AddBool("statsview", false, "launch the statsview server (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	vm, prog, err := setup(md, opts)
	if err != nil {
		return err
	}

	if *stats {
		err = statsview.Launch(md.Output, "")
		if err != nil {
			return err
		}
	}

	hl := headless.NewHeadless(float32(*opts.rate), *paced, time.Now())
	defer hl.Destroy()

	// the headless host is always the first canvas. the optional canvases
	// follow it
	canvases := []renderloop.Canvas{hl}

	var dig *digest.Video
	if *useDigest {
		dig, err = digest.NewVideo(framebuffer.Width, framebuffer.Height)
		if err != nil {
			return err
		}
		canvases = append(canvases, dig)
	}

	var scr *screenshot.Canvas
	if *shot != "" {
		scr = screenshot.NewCanvas(framebuffer.Width, framebuffer.Height)
		canvases = append(canvases, scr)
	}

	loop := renderloop.NewLoop(vm, renderloop.Canvases(canvases...), hl, hl, 1)
	hl.SetEventHandler(gui.InputHandler(vm, loop.Stop))

	var elapsed time.Duration
	run := func() error {
		start := time.Now()
		if err := loop.Start(hl.Now()); err != nil {
			return err
		}
		hl.RunFrames(*frames)
		loop.Stop()
		elapsed = time.Since(start)
		return loop.Err()
	}

	err = performance.RunProfiler(prf, "performance", run)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: %d frames in %.2fs (%.2f frames per second)\n",
		prog.Name, loop.Frames(), elapsed.Seconds(), float64(loop.Frames())/elapsed.Seconds())
	for _, l := range hl.Readout() {
		fmt.Fprintln(md.Output, l)
	}

	if dig != nil {
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())
	}

	if scr != nil {
		err = scr.Save(*shot, *scale)
		if err != nil {
			return err
		}
	}

	if *plot != "" {
		err = savePlot(*plot, loop.Window())
		if err != nil {
			return err
		}
	}

	if *memoryGraph != "" {
		f, err := os.Create(*memoryGraph)
		if err != nil {
			return err
		}
		memviz.Map(f, vm)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func savePlot(filename string, window []float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = performance.PlotWindow(f, window)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
