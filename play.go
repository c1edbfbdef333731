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

	"github.com/jetsetilly/gopher8/framebuffer"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/renderloop"
	"github.com/jetsetilly/gopher8/version"
)

// the default size of each display pixel in the SDL window
const defaultScale = 10

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addOptions(md)
	scale := md.AddInt("scale", defaultScale, "size of each display pixel")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vm, prog, err := setup(md, opts)
	if err != nil {
		return err
	}

	width := framebuffer.Width * max(*scale, 1)
	height := framebuffer.Height * max(*scale, 1)

	g, err := sync.create(func() (GuiCreator, error) {
		scr, err := sdlplay.NewSdlPlay(fmt.Sprintf("%s - %s", version.ApplicationName, prog.Name),
			width, height, float32(*opts.rate))
		if err != nil {
			return nil, err
		}
		return scr, nil
	})
	if err != nil {
		return err
	}
	scr := g.(*sdlplay.SdlPlay)

	// frames are run by the SDL host on the main thread
	loop := renderloop.NewLoop(vm, scr, scr, scr, *scale)
	scr.SetEventHandler(gui.InputHandler(vm, loop.Stop))

	err = loop.Start(time.Now())
	if err != nil {
		return err
	}
	<-loop.Done()

	return loop.Err()
}

func playTerm(md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log can not be echoed while the terminal is being drawn to. it is
	// printed once the terminal has been restored instead
	echo := *opts.log
	*opts.log = false

	vm, _, err := setup(md, opts)
	if err != nil {
		return err
	}

	scr, err := termplay.NewTermPlay(framebuffer.Width, framebuffer.Height, float32(*opts.rate))
	if err != nil {
		return err
	}

	loop := renderloop.NewLoop(vm, scr, scr, scr, 1)
	scr.SetEventHandler(gui.InputHandler(vm, loop.Stop))

	err = loop.Start(time.Now())
	if err == nil {
		scr.Serve(loop.Done())
		loop.Stop()
	}
	scr.Destroy(os.Stderr)

	if echo {
		logger.Write(os.Stdout)
	}

	if err != nil {
		return err
	}
	return loop.Err()
}
