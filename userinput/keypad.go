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

import "fmt"

// Nibble is the value of a key on the keypad. Valid values are 0x0 to 0xf.
type Nibble uint8

func (n Nibble) String() string {
	return fmt.Sprintf("%X", uint8(n))
}

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// physical key names to keypad values
var keypad = map[string]Nibble{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// MapKey returns the keypad value for a physical key name. The second return
// value is false if the key is not part of the keypad.
func MapKey(key string) (Nibble, bool) {
	n, ok := keypad[key]
	return n, ok
}
