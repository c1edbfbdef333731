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

package termplay

import (
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

// ASCII codes that end the program.
const (
	keyInterrupt = 3  // end-of-text character
	keyEsc       = 27 // escape
)

// heldKeys synthesises key-up events for the terminal.
type heldKeys struct {
	handler gui.EventHandler

	// the time of the most recent key-down for each held key
	held map[string]time.Time
}

func newHeldKeys(handler gui.EventHandler) *heldKeys {
	return &heldKeys{
		handler: handler,
		held:    make(map[string]time.Time),
	}
}

func (k *heldKeys) send(ev userinput.Event) {
	if k.handler != nil {
		k.handler(ev)
	}
}

// press is called for every byte read from the terminal.
func (k *heldKeys) press(c byte, now time.Time) {
	if c == keyInterrupt || c == keyEsc {
		k.send(userinput.EventQuit{})
		return
	}

	// key names are the same as used by SDL
	key := strings.ToUpper(string(rune(c)))

	_, repeat := k.held[key]
	k.held[key] = now
	k.send(userinput.EventKeyboard{Key: key, Down: true, Repeat: repeat})
}

// expire releases every key that has been held for longer than KeyHoldTime
// since its last key-down.
func (k *heldKeys) expire(now time.Time) {
	for key, t := range k.held {
		if now.Sub(t) >= KeyHoldTime {
			delete(k.held, key)
			k.send(userinput.EventKeyboard{Key: key, Down: false})
		}
	}
}
