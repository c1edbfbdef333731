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
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// the parts of a zip or 7z file entry used when reading an archive
type archiveEntry struct {
	name  string
	isDir bool
	open  func() (io.ReadCloser, error)
}

func readArchive(path string) ([]Program, error) {
	var entries []archiveEntry

	switch strings.ToUpper(filepath.Ext(path)) {
	case ".ZIP":
		r, err := zip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("library: %w", err)
		}
		defer r.Close()

		for _, f := range r.File {
			entries = append(entries, archiveEntry{
				name:  f.Name,
				isDir: f.FileInfo().IsDir(),
				open:  f.Open,
			})
		}
		return readEntries(path, entries)

	case ".7Z":
		r, err := sevenzip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("library: %w", err)
		}
		defer r.Close()

		for _, f := range r.File {
			entries = append(entries, archiveEntry{
				name:  f.Name,
				isDir: f.FileInfo().IsDir(),
				open:  f.Open,
			})
		}
		return readEntries(path, entries)
	}

	return nil, fmt.Errorf("library: unsupported archive type: %s", path)
}

func readEntries(path string, entries []archiveEntry) ([]Program, error) {
	var programs []Program
	for _, e := range entries {
		if e.isDir || !isProgram(e.name) {
			continue
		}

		rc, err := e.open()
		if err != nil {
			return nil, fmt.Errorf("library: %s: %w", e.name, err)
		}
		data, err := readProgram(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("library: %s: %w", e.name, err)
		}

		programs = append(programs, NewProgram(programName(e.name), data, filepath.Join(path, e.name)))
	}
	return programs, nil
}
