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

// Package termplay is a host environment for the render loop that draws to a
// terminal. Each character cell of the terminal shows two pixels of the
// display, one above the other, using the Unicode half-block characters. The
// readout is printed below the display.
//
// Terminals do not report key releases. A key is released by the host when
// no key-down for it has been seen for KeyHoldTime. The auto-repeat of a held
// key keeps the key down.
//
// The canvas must be sized with a cell size of one. Larger canvases are
// accepted but the display is then drawn at that size.
package termplay

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"
)

// KeyHoldTime is the length of time a key is considered to be down after the
// most recent key-down from the terminal.
const KeyHoldTime = 200 * time.Millisecond

// the terminal device used for input
const ttyDevice = "/dev/tty"

// TermPlay is a terminal implementation of the gui.Host interface.
type TermPlay struct {
	gui.Scheduler

	tty    *term.Term
	output *bufio.Writer

	lmtr *limiter.Limiter

	// the pixels painted in the current frame
	screen *screen

	keys *heldKeys

	// bytes read from the tty
	input chan byte
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The width and height are the dimensions of the canvas. An error is
// returned if the terminal is too small.
func NewTermPlay(width, height int, rate float32) (*TermPlay, error) {
	rows, cols, err := geometry(os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}
	if cols < width || rows < (height+1)/2+readoutRows {
		return nil, fmt.Errorf("termplay: terminal too small (%dx%d) for display (%dx%d)",
			cols, rows, width, (height+1)/2+readoutRows)
	}

	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	tp := &TermPlay{
		tty:    tty,
		output: bufio.NewWriter(os.Stdout),
		lmtr:   limiter.NewLimiter(rate),
		screen: newScreen(width, height),
		input:  make(chan byte, 64),
	}
	tp.keys = newHeldKeys(nil)

	go tp.readInput()

	tp.output.WriteString(clearScreen)
	tp.output.WriteString(hideCursor)
	tp.output.Flush()

	return tp, nil
}

// geometry returns the number of rows and columns of the terminal.
func geometry(f *os.File) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

func (tp *TermPlay) readInput() {
	b := make([]byte, 16)
	for {
		n, err := tp.tty.Read(b)
		if err != nil {
			// the tty is closed by Destroy()
			close(tp.input)
			return
		}
		for _, c := range b[:n] {
			tp.input <- c
		}
	}
}

// SetEventHandler implements the gui.Host interface.
func (tp *TermPlay) SetEventHandler(handler gui.EventHandler) {
	tp.keys.handler = handler
}

// FillRect implements the renderloop.Canvas interface.
func (tp *TermPlay) FillRect(x, y, w, h int, col color.RGBA) error {
	tp.screen.fill(x, y, w, h, col)
	return nil
}

// EndFrame implements the renderloop.Canvas interface.
func (tp *TermPlay) EndFrame() error {
	tp.screen.draw(tp.output)
	return tp.output.Flush()
}

// SetReadout implements the renderloop.Readout interface.
func (tp *TermPlay) SetReadout(lines []string) {
	tp.screen.readout = lines
}

// Serve user input and frame requests until the done channel is closed or
// the terminal input ends.
func (tp *TermPlay) Serve(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return

		case c, ok := <-tp.input:
			if !ok {
				return
			}
			tp.keys.press(c, time.Now())

		case now := <-tp.lmtr.C():
			tp.keys.expire(now)
			tp.Scheduler.Run(now)
		}
	}
}

// Destroy restores the terminal to the state it was in before NewTermPlay()
// was called.
func (tp *TermPlay) Destroy(output io.Writer) {
	tp.lmtr.Stop()

	tp.output.WriteString(showCursor)
	tp.output.WriteString("\r\n")
	tp.output.Flush()

	if err := tp.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "termplay", err.Error())
	}
	if err := tp.tty.Close(); err != nil {
		output.Write([]byte(err.Error()))
	}
}
