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

package userinput_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

// records every call made to the HandleInput interface
type recorder struct {
	calls []string
}

func (r *recorder) PressKey(key userinput.Nibble) {
	r.calls = append(r.calls, fmt.Sprintf("press %s", key))
}

func (r *recorder) ReleaseKey(key userinput.Nibble) {
	r.calls = append(r.calls, fmt.Sprintf("release %s", key))
}

func TestMapKey(t *testing.T) {
	layout := []struct {
		key   string
		value userinput.Nibble
	}{
		{"1", 0x1}, {"2", 0x2}, {"3", 0x3}, {"4", 0xc},
		{"Q", 0x4}, {"W", 0x5}, {"E", 0x6}, {"R", 0xd},
		{"A", 0x7}, {"S", 0x8}, {"D", 0x9}, {"F", 0xe},
		{"Z", 0xa}, {"X", 0x0}, {"C", 0xb}, {"V", 0xf},
	}

	seen := make(map[userinput.Nibble]bool)
	for _, l := range layout {
		v, ok := userinput.MapKey(l.key)
		test.ExpectSuccess(t, ok, l.key)
		test.ExpectEquality(t, v, l.value, l.key)
		seen[v] = true

		// the same key always produces the same value
		w, _ := userinput.MapKey(l.key)
		test.ExpectEquality(t, w, v, l.key)
	}

	// every keypad value is reachable
	test.ExpectEquality(t, len(seen), userinput.NumKeys)
}

func TestUnmappedKeys(t *testing.T) {
	for _, k := range []string{"", "5", "T", "G", "B", "q", "Space", "Escape", "F1", "Left"} {
		_, ok := userinput.MapKey(k)
		test.ExpectFailure(t, ok, k)
	}
}

func TestPressAndRelease(t *testing.T) {
	r := &recorder{}

	quit := userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, r)
	test.ExpectFailure(t, quit)
	quit = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false}, r)
	test.ExpectFailure(t, quit)

	test.DemandEquality(t, len(r.calls), 2)
	test.ExpectEquality(t, r.calls[0], "press 5")
	test.ExpectEquality(t, r.calls[1], "release 5")
}

func TestUnmappedKeyIgnored(t *testing.T) {
	r := &recorder{}
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: true}, r)
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: false}, r)
	test.ExpectEquality(t, len(r.calls), 0)
}

func TestRepeatedKeyDown(t *testing.T) {
	r := &recorder{}
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: true}, r)
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: true, Repeat: true}, r)
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: true, Repeat: true}, r)
	userinput.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: false}, r)

	test.DemandEquality(t, len(r.calls), 4)
	test.ExpectEquality(t, r.calls[0], "press F")
	test.ExpectEquality(t, r.calls[1], "press F")
	test.ExpectEquality(t, r.calls[2], "press F")
	test.ExpectEquality(t, r.calls[3], "release F")
}

func TestQuit(t *testing.T) {
	r := &recorder{}
	test.ExpectSuccess(t, userinput.HandleUserInput(userinput.EventQuit{}, r))
	test.ExpectEquality(t, len(r.calls), 0)
}
