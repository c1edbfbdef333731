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

// Package library finds and loads CHIP-8 programs by name.
//
// A Library starts with a small number of built-in programs. More programs
// are added with AddPath(), which accepts a directory, a zip or 7z archive, or
// a single program file. In a directory or archive every file with one of the
// ProgramExtensions is added, named after the file without its extension.
//
// Names are not case sensitive. Adding a program with the same name as an
// existing program replaces it.
package library
