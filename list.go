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

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/version"
)

func list(md *modalflag.Modes) error {
	md.NewMode()

	lib := md.AddString("library", "", "directory or archive of additional programs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	l, err := newLibrary(options{library: lib})
	if err != nil {
		return err
	}

	for _, n := range l.Names() {
		prog, err := l.Load(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(md.Output, prog)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	lib := md.AddString("library", "", "directory or archive of additional programs")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	name, err := programArg(md)
	if err != nil {
		return err
	}

	l, err := newLibrary(options{library: lib})
	if err != nil {
		return err
	}

	prog, err := l.Load(name)
	if err != nil {
		return err
	}

	for i := 0; i+1 < len(prog.Data); i += 2 {
		opcode := uint16(prog.Data[i])<<8 | uint16(prog.Data[i+1])
		address := chip8.ProgramAddress + i
		if *bytecode {
			fmt.Fprintf(md.Output, "%03x  %04x  %s\n", address, opcode, chip8.Disassemble(opcode))
		} else {
			fmt.Fprintf(md.Output, "%03x  %s\n", address, chip8.Disassemble(opcode))
		}
	}

	// programs with an odd number of bytes have a trailing byte that can not
	// be disassembled
	if len(prog.Data)%2 == 1 {
		fmt.Fprintf(md.Output, "%03x  %02x\n", chip8.ProgramAddress+len(prog.Data)-1, prog.Data[len(prog.Data)-1])
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
