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

// Package govern defines the states of a running emulation. The render loop
// moves between these states and the hosts use them to decide what to show
// and when to stop.
package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Initialising is the default state and is left as soon as the render loop
// is started.
//
// Halted means the interpreter has faulted. The display continues to be
// painted but the interpreter is no longer stepped.
//
// Ending is final. No further frames will be run.
const (
	Initialising State = iota
	Running
	Halted
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Ending:
		return "Ending"
	}
	return ""
}

// Transition returns true if a change from one state to another is permitted.
// A state may always transition to itself.
//
// Rules:
//
//  1. Ending can be entered from any state but never left
//
//  2. Halted can only be entered from Running
//
//  3. Nothing returns to Initialising
func Transition(from State, to State) bool {
	if from == to {
		return true
	}
	switch from {
	case Ending:
		return false
	case Initialising:
		return to == Running || to == Ending
	case Running:
		return to == Halted || to == Ending
	case Halted:
		return to == Ending
	}
	return false
}
