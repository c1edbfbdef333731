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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions are the same except that they stop the test
// with t.Fatalf(). Demand is useful when later parts of the test depend on the
// value being correct, for example the length of a slice that is about to be
// indexed.
//
// Success and failure are defined according to the type of the value being
// tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The untyped nil is treated as success because that is how a nil error
// arrives when passed through an interface.
//
// The Writer type implements io.Writer and is used to capture output for
// comparison with an expected string.
package test
