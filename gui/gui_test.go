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

package gui_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestScheduler(t *testing.T) {
	var sch gui.Scheduler
	test.ExpectFailure(t, sch.Pending())
	test.ExpectFailure(t, sch.Run(time.Now()))

	var calls []time.Time
	var callback func(now time.Time)
	callback = func(now time.Time) {
		calls = append(calls, now)
		if len(calls) < 3 {
			sch.RequestFrame(callback)
		}
	}
	sch.RequestFrame(callback)
	test.ExpectSuccess(t, sch.Pending())

	start := time.Unix(1000, 0)
	for i := 0; i < 5; i++ {
		sch.Run(start.Add(time.Duration(i) * time.Second))
	}
	test.ExpectEquality(t, len(calls), 3)
	test.ExpectEquality(t, calls[2], start.Add(2*time.Second))
	test.ExpectFailure(t, sch.Pending())
}

func TestSchedulerReplace(t *testing.T) {
	var sch gui.Scheduler
	var which string
	sch.RequestFrame(func(_ time.Time) { which = "first" })
	sch.RequestFrame(func(_ time.Time) { which = "second" })
	test.ExpectSuccess(t, sch.Run(time.Now()))
	test.ExpectEquality(t, which, "second")
}

type keys struct {
	down []userinput.Nibble
	up   []userinput.Nibble
}

func (k *keys) PressKey(n userinput.Nibble)   { k.down = append(k.down, n) }
func (k *keys) ReleaseKey(n userinput.Nibble) { k.up = append(k.up, n) }

func TestInputHandler(t *testing.T) {
	var k keys
	var quit bool
	h := gui.InputHandler(&k, func() { quit = true })

	h(userinput.EventKeyboard{Key: "W", Down: true})
	h(userinput.EventKeyboard{Key: "W", Down: false})
	h(userinput.EventKeyboard{Key: "P", Down: true})
	test.ExpectEquality(t, len(k.down), 1)
	test.ExpectEquality(t, len(k.up), 1)
	test.ExpectEquality(t, k.down[0], userinput.Nibble(0x5))
	test.ExpectFailure(t, quit)

	h(userinput.EventQuit{})
	test.ExpectSuccess(t, quit)
}
