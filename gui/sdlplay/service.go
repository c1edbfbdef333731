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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// service every queued event before the frame so that input is seen by
	// the interpreter as soon as possible
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			key := sdl.GetKeyName(ev.Keysym.Sym)

			if key == "Escape" {
				if ev.Type == sdl.KEYDOWN {
					scr.send(userinput.EventQuit{})
				}
				continue // for loop
			}

			scr.send(userinput.EventKeyboard{
				Key:    key,
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})
		}
	}

	// wait for frame limiter and run the frame
	now := scr.lmtr.Wait()
	scr.Run(now)
}

func (scr *SdlPlay) send(ev userinput.Event) {
	if h := scr.handler.Load(); h != nil && *h != nil {
		(*h)(ev)
	}
}
