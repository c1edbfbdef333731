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

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// Quirks control the behaviour of instructions that differ between CHIP-8
// implementations.
type Quirks struct {
	// the 8xy6 and 8xyE shift instructions shift Vx in place rather than
	// shifting Vy into Vx
	ShiftUsesVX bool

	// the Fx55 and Fx65 bulk load/store instructions leave the I register
	// unchanged rather than advancing it past the last register
	LoadStoreKeepsI bool
}

// DefaultQuirks are the quirks expected by most programs.
var DefaultQuirks = Quirks{
	ShiftUsesVX:     true,
	LoadStoreKeepsI: true,
}

// VM is the CHIP-8 interpreter.
type VM struct {
	memory [MemorySize]uint8

	v  [16]uint8
	i  uint16
	pc uint16
	sp uint16

	delay uint8
	sound uint8

	keypad [userinput.NumKeys]bool

	quirks Quirks
	rand   *rand.Rand

	// the error that caused the interpreter to stop
	fault error

	// instruction trace is written to the log when trace is true
	trace bool
}

// New is the preferred method of initialisation for the VM type. The random
// number generator is seeded with the current time. Use Seed() for
// repeatable results.
func New(quirks Quirks) *VM {
	vm := &VM{
		quirks: quirks,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	vm.Reset()
	return vm
}

// Seed the random number generator used by the Cxkk instruction.
func (vm *VM) Seed(seed int64) {
	vm.rand.Seed(seed)
}

// SetTrace turns instruction tracing on or off. Trace output is written to
// the central log.
func (vm *VM) SetTrace(trace bool) {
	vm.trace = trace
}

// AllowLogging implements the logger.Permission interface. Used for trace
// logging.
func (vm *VM) AllowLogging() bool {
	return vm.trace
}

// Quirks returns the quirks in use by the interpreter.
func (vm *VM) Quirks() Quirks {
	return vm.quirks
}

// Reset clears memory and registers and loads the font. Any program in memory
// is lost.
func (vm *VM) Reset() {
	vm.memory = [MemorySize]uint8{}
	copy(vm.memory[FontAddress:], font[:])
	vm.v = [16]uint8{}
	vm.i = 0
	vm.pc = ProgramAddress
	vm.sp = StackStart
	vm.delay = 0
	vm.sound = 0
	vm.keypad = [userinput.NumKeys]bool{}
	vm.fault = nil
}

// LoadProgram resets the interpreter and copies the program into memory.
func (vm *VM) LoadProgram(data []byte) error {
	if len(data) > MaxProgramSize {
		return fmt.Errorf("%w (%d bytes, maximum is %d)", ErrProgramTooLarge, len(data), MaxProgramSize)
	}
	vm.Reset()
	copy(vm.memory[ProgramAddress:], data)
	logger.Logf(logger.Allow, "chip8", "loaded program (%d bytes)", len(data))
	return nil
}

// Step executes a single instruction. Implements the renderloop.Interpreter
// interface.
func (vm *VM) Step() error {
	if vm.fault != nil {
		return vm.fault
	}

	if int(vm.pc)+1 >= MemorySize {
		vm.fault = fmt.Errorf("%w (fetch at %03x)", ErrMemoryAccess, vm.pc)
		return vm.fault
	}

	pc := vm.pc
	opcode := uint16(vm.memory[pc])<<8 | uint16(vm.memory[pc+1])
	vm.pc += 2

	if vm.trace {
		logger.Logf(vm, "chip8", "%03x %04x %s", pc, opcode, Disassemble(opcode))
	}

	err := vm.execute(opcode)
	if err != nil {
		vm.fault = fmt.Errorf("%w (%04x at %03x)", err, opcode, pc)
		logger.Logf(logger.Allow, "chip8", "%v", vm.fault)
		return vm.fault
	}

	return nil
}

// DecrementTimers decrements the delay and sound timers. Timers stop at
// zero. Implements the renderloop.Interpreter interface.
func (vm *VM) DecrementTimers() {
	if vm.delay > 0 {
		vm.delay--
	}
	if vm.sound > 0 {
		vm.sound--
	}
}

// FrameBuffer returns a view of the display memory. Implements the
// renderloop.Interpreter interface.
func (vm *VM) FrameBuffer() []byte {
	return vm.memory[displayAddress:frameAddress:frameAddress]
}

// Fault returns the error that stopped the interpreter. Implements the
// renderloop.Interpreter interface.
func (vm *VM) Fault() error {
	return vm.fault
}

// PressKey implements the userinput.HandleInput interface.
func (vm *VM) PressKey(key userinput.Nibble) {
	vm.keypad[key&0x0f] = true
}

// ReleaseKey implements the userinput.HandleInput interface.
func (vm *VM) ReleaseKey(key userinput.Nibble) {
	vm.keypad[key&0x0f] = false
}

// V returns the value of the numbered V register.
func (vm *VM) V(reg int) uint8 {
	return vm.v[reg&0x0f]
}

// I returns the value of the I register.
func (vm *VM) I() uint16 {
	return vm.i
}

// PC returns the address of the next instruction.
func (vm *VM) PC() uint16 {
	return vm.pc
}

// SP returns the stack pointer.
func (vm *VM) SP() uint16 {
	return vm.sp
}

// Timers returns the values of the delay and sound timers.
func (vm *VM) Timers() (uint8, uint8) {
	return vm.delay, vm.sound
}

func (vm *VM) String() string {
	s := fmt.Sprintf("PC=%03x I=%03x SP=%03x DT=%02x ST=%02x", vm.pc, vm.i, vm.sp, vm.delay, vm.sound)
	for r, v := range vm.v {
		s = fmt.Sprintf("%s V%X=%02x", s, r, v)
	}
	return s
}
