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

// Package modalflag extends the flag package in the standard library with
// program modes. A mode is a command line argument that selects a different
// set of flags and arguments, in the way that "build" and "test" select
// different behaviour of the go command.
//
// Arguments are given once with NewArgs(). Each call to Parse() then consumes
// the flags for the current mode and, if sub-modes have been added, the name
// of the next mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "LIST")
//	verbose := md.AddBool("verbose", false, "print log messages")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "size of each pixel")
//		...
//	}
//
// The first sub-mode is the default, selected when the next argument is not
// the name of a sub-mode. Sub-mode names are not case sensitive.
//
// Help is printed automatically when the -help or -h flag is used and Parse()
// returns ParseHelp. The help lists the flags and sub-modes of the current
// mode.
package modalflag
