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

// Package statsview serves graphs of the program's runtime statistics over
// HTTP. The server is only available when the program is built with the
// statsview build tag:
//
//	go build -tags statsview .
//
// Otherwise Launch() returns an error and Available() returns false.
//
// Once launched, the graphs are at:
//
//	localhost:12800/debug/statsview
//
// And the standard Go pprof pages at:
//
//	localhost:12800/debug/pprof/
package statsview

// DefaultAddress is the address the server listens on if no other address is
// given to Launch().
const DefaultAddress = "localhost:12800"

const path = "/debug/statsview"
