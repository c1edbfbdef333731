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

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/library"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// options common to all modes that run a program.
type options struct {
	library        *string
	shiftQuirk     *bool
	loadStoreQuirk *bool
	seed           *int64
	rate           *float64
	log            *bool
	trace          *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		library:        md.AddString("library", "", "directory or archive of additional programs"),
		shiftQuirk:     md.AddBool("shiftquirk", chip8.DefaultQuirks.ShiftUsesVX, "shift instructions shift VX and ignore VY"),
		loadStoreQuirk: md.AddBool("loadstorequirk", chip8.DefaultQuirks.LoadStoreKeepsI, "load/store instructions leave I unchanged"),
		seed:           md.AddInt64("seed", 0, "seed for the random number generator (0 to seed with the time)"),
		rate:           md.AddFloat64("rate", float64(limiter.DefaultRate), "display refresh rate"),
		log:            md.AddBool("log", false, "echo debugging log to stdout"),
		trace:          md.AddBool("trace", false, "add every executed instruction to the log"),
	}
}

func newLibrary(opts options) (*library.Library, error) {
	lib := library.NewLibrary()
	if *opts.library != "" {
		if _, err := lib.AddPath(*opts.library); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// programArg returns the single program argument of the mode.
func programArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("program required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// setup creates the interpreter and loads the named program into it.
func setup(md *modalflag.Modes, opts options) (*chip8.VM, library.Program, error) {
	name, err := programArg(md)
	if err != nil {
		return nil, library.Program{}, err
	}

	if *opts.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	lib, err := newLibrary(opts)
	if err != nil {
		return nil, library.Program{}, err
	}

	prog, err := lib.Load(name)
	if err != nil {
		return nil, library.Program{}, err
	}

	vm := chip8.New(chip8.Quirks{
		ShiftUsesVX:     *opts.shiftQuirk,
		LoadStoreKeepsI: *opts.loadStoreQuirk,
	})
	if *opts.seed != 0 {
		vm.Seed(*opts.seed)
	}
	vm.SetTrace(*opts.trace)

	err = vm.LoadProgram(prog.Data)
	if err != nil {
		return nil, library.Program{}, err
	}

	logger.Logf(logger.Allow, "gopher8", "running %s", prog)

	return vm, prog, nil
}
