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

package userinput

// HandleInput is implemented by anything that accepts keypad input. In
// practice this is the interpreter.
type HandleInput interface {
	PressKey(key Nibble)
	ReleaseKey(key Nibble)
}

func keyboard(ev EventKeyboard, handle HandleInput) {
	key, ok := MapKey(ev.Key)
	if !ok {
		return
	}

	if ev.Down {
		handle.PressKey(key)
	} else {
		handle.ReleaseKey(key)
	}
}

// HandleUserInput deciphers the Event and forwards any keypad input to the
// HandleInput implementation. Returns true if the event is a quit event and
// false otherwise.
func HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true
	case EventKeyboard:
		keyboard(ev, handle)
	}
	return false
}
