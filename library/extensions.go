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
	"path/filepath"
	"strings"
)

// ProgramExtensions is the list of file extensions recognised as CHIP-8
// programs.
var ProgramExtensions = [...]string{".CH8", ".C8", ".ROM"}

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP", ".7Z"}

func hasExtension(filename string, extensions []string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isProgram(filename string) bool {
	return hasExtension(filename, ProgramExtensions[:])
}

func isArchive(filename string) bool {
	return hasExtension(filename, ArchiveExtensions[:])
}

// programName is the base of the filename without the extension.
func programName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
