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

// Package userinput translates keyboard events from the host into presses and
// releases of the sixteen key hexadecimal keypad.
//
// It is a translation layer between the GUI implementation and the
// interpreter. Key identifiers are the key names used by SDL ("1", "Q", "Z",
// etc.) and other hosts are expected to produce the same names.
//
// The keypad is laid out over the left hand side of a QWERTY keyboard:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
//
// No key state is kept by this package. Every key-down for a mapped key is
// forwarded as a press, including auto-repeated key-downs, and every key-up
// as a release. Keys that are not on the keypad are ignored.
package userinput
