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

// Package sdlplay is a host environment for the render loop built on SDL. It
// opens a single window the size of the render loop's canvas. The window
// title is used as the readout.
//
// SDL requires that all window and event handling happens on the main thread.
// The Service() function must therefore be called regularly from the main
// thread. Frame callbacks and user input are handled inside Service().
package sdlplay

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// SdlPlay is an SDL implementation of the gui.Host interface.
type SdlPlay struct {
	gui.Scheduler

	title string

	// limit the rate at which frames are requested
	lmtr *limiter.Limiter

	// receives user input. set from outside the main thread
	handler atomic.Pointer[gui.EventHandler]

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer

	// the most recent readout. the window title is only changed when the
	// readout changes
	readout string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Must be
// called from the main thread.
func NewSdlPlay(title string, width, height int, rate float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		title: title,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.lmtr = limiter.NewLimiter(rate)

	return scr, nil
}

// SetEventHandler implements the gui.Host interface.
func (scr *SdlPlay) SetEventHandler(handler gui.EventHandler) {
	scr.handler.Store(&handler)
}

// FillRect implements the renderloop.Canvas interface.
func (scr *SdlPlay) FillRect(x, y, w, h int, col color.RGBA) error {
	err := scr.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}
	err = scr.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)})
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}
	return nil
}

// EndFrame implements the renderloop.Canvas interface.
func (scr *SdlPlay) EndFrame() error {
	scr.renderer.Present()
	return nil
}

// SetReadout implements the renderloop.Readout interface.
func (scr *SdlPlay) SetReadout(lines []string) {
	s := strings.Join(lines, " | ")
	if s == scr.readout {
		return
	}
	scr.readout = s
	scr.window.SetTitle(fmt.Sprintf("%s :: %s", scr.title, s))
}

// Destroy implements the GuiCreator interface. Must be called from the main
// thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.lmtr.Stop()

	if err := scr.renderer.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := scr.window.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	sdl.Quit()
}
