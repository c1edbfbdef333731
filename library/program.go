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

package library

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Program is a named CHIP-8 program.
type Program struct {
	Name string
	Data []byte

	// Hash of the program data. Two programs with the same Hash can be
	// considered identical
	Hash uint64

	// where the program was found. the empty string for built-in programs
	Source string
}

// NewProgram is the preferred method of initialisation for the Program type.
func NewProgram(name string, data []byte, source string) Program {
	return Program{
		Name:   name,
		Data:   data,
		Hash:   xxhash.Sum64(data),
		Source: source,
	}
}

func (p Program) String() string {
	if p.Source == "" {
		return fmt.Sprintf("%s (%d bytes, built-in)", p.Name, len(p.Data))
	}
	return fmt.Sprintf("%s (%d bytes, %s)", p.Name, len(p.Data), p.Source)
}
