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

// Package gui contains the parts shared by the host environments that the
// render loop runs in. The host environments themselves are in the
// sub-packages.
//
// A host provides the three services needed by renderloop.Loop: a Canvas to
// paint to, a Readout to show the frame rate and a FrameScheduler to call the
// loop at every display refresh. Keyboard input is sent by the host to an
// EventHandler as userinput.Event values.
package gui

import (
	"github.com/jetsetilly/gopher8/renderloop"
	"github.com/jetsetilly/gopher8/userinput"
)

// Host is implemented by all host environments.
type Host interface {
	renderloop.Canvas
	renderloop.Readout
	renderloop.FrameScheduler

	// SetEventHandler sets the function that receives user input. The
	// handler is called from the same goroutine as the frame callbacks
	SetEventHandler(EventHandler)
}

// EventHandler receives user input from the host.
type EventHandler func(ev userinput.Event)

// InputHandler returns an EventHandler that forwards keypad input to the
// HandleInput implementation and calls quit when the user asks to quit.
func InputHandler(handle userinput.HandleInput, quit func()) EventHandler {
	return func(ev userinput.Event) {
		if userinput.HandleUserInput(ev, handle) {
			quit()
		}
	}
}
