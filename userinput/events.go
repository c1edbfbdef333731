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

// Event is the interface for all events sent by the host.
type Event interface{}

// EventQuit is sent when the user has requested the end of the program.
type EventQuit struct{}

// EventKeyboard is sent for every key-down and key-up on the physical
// keyboard.
type EventKeyboard struct {
	// the key name as used by SDL
	Key string

	// Down is false for key-up events
	Down bool

	// Repeat is true for key-down events generated by the host's auto-repeat
	Repeat bool
}
