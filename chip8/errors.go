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

package chip8

import "errors"

// Sentinal errors returned by the interpreter. Errors returned by Step() wrap
// one of these errors with the address and opcode that caused the fault.
var (
	ErrUnknownOpcode   = errors.New("chip8: unknown opcode")
	ErrStackOverflow   = errors.New("chip8: stack overflow")
	ErrStackUnderflow  = errors.New("chip8: stack underflow")
	ErrMemoryAccess    = errors.New("chip8: memory access out of range")
	ErrProgramTooLarge = errors.New("chip8: program too large")
)
