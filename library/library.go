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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/logger"
)

// ErrUnknownProgram is returned by Load() when no program with the requested
// name can be found.
var ErrUnknownProgram = errors.New("library: unknown program")

// the largest file that will be read as a program. anything larger can not be
// a CHIP-8 program and is probably not what the user intended
const maxFileSize = 0x1000

// Library is a collection of named programs.
type Library struct {
	programs map[string]Program
}

// NewLibrary is the preferred method of initialisation for the Library type.
// The new Library contains the built-in programs.
func NewLibrary() *Library {
	lib := &Library{
		programs: make(map[string]Program),
	}
	for _, p := range builtin {
		lib.Add(NewProgram(p.name, p.data, ""))
	}
	return lib
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add a program to the library.
func (lib *Library) Add(p Program) {
	lib.programs[key(p.Name)] = p
}

// Names returns the names of all programs in the library, sorted
// alphabetically.
func (lib *Library) Names() []string {
	n := make([]string, 0, len(lib.programs))
	for _, p := range lib.programs {
		n = append(n, p.Name)
	}
	sort.Slice(n, func(i, j int) bool {
		return key(n[i]) < key(n[j])
	})
	return n
}

// Len returns the number of programs in the library.
func (lib *Library) Len() int {
	return len(lib.programs)
}

// Load the named program. If there is no program with that name and the name
// is the path of a readable file then that file is loaded instead.
func (lib *Library) Load(name string) (Program, error) {
	if p, ok := lib.programs[key(name)]; ok {
		return p, nil
	}

	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return loadFile(name)
	}

	return Program{}, fmt.Errorf("%w: %s", ErrUnknownProgram, name)
}

// AddPath adds every program found at the path. The path can be a
// directory, an archive or a single program file. Returns the number of
// programs added.
func (lib *Library) AddPath(path string) (int, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("library: %w", err)
	}

	var programs []Program

	switch {
	case fi.IsDir():
		programs, err = readDir(path)
	case isArchive(path):
		programs, err = readArchive(path)
	default:
		var p Program
		p, err = loadFile(path)
		programs = []Program{p}
	}
	if err != nil {
		return 0, err
	}

	for _, p := range programs {
		lib.Add(p)
	}
	logger.Logf(logger.Allow, "library", "%d programs from %s", len(programs), path)

	return len(programs), nil
}

func loadFile(filename string) (Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Program{}, fmt.Errorf("library: %w", err)
	}
	defer f.Close()

	data, err := readProgram(f)
	if err != nil {
		return Program{}, fmt.Errorf("library: %s: %w", filename, err)
	}

	return NewProgram(programName(filename), data, filename), nil
}

// readProgram reads all data from the reader, failing if there is more data
// than can possibly be a program.
func readProgram(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("file is too large to be a program")
	}
	return data, nil
}

// readDir reads every program in the directory. sub-directories are not
// searched.
func readDir(path string) ([]Program, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("library: %w", err)
	}

	var programs []Program
	for _, e := range entries {
		if e.IsDir() || !isProgram(e.Name()) {
			continue
		}
		p, err := loadFile(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}

	return programs, nil
}
