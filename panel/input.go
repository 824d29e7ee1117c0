// This file is part of Tabletop.
//
// Tabletop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tabletop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tabletop.  If not, see <https://www.gnu.org/licenses/>.

package panel

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/tabletop/curated"
)

// sentinel errors for terminal initialisation
const TermError = "terminal: %v"

// rawInput puts stdin into cbreak mode and delivers keypresses on a channel.
// a terminal can't report key releases, so the panel treats every keypress as
// momentary, see the release handling in Run()
type rawInput struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// keypresses as they arrive. closed when the read goroutine ends
	Presses chan rune
}

func newRawInput() (*rawInput, error) {
	inp := &rawInput{
		input:   os.Stdin,
		Presses: make(chan rune, 8),
	}

	if err := termios.Tcgetattr(inp.input.Fd(), &inp.canAttr); err != nil {
		return nil, curated.Errorf(TermError, err)
	}

	inp.cbreakAttr = inp.canAttr
	termios.Cfmakecbreak(&inp.cbreakAttr)

	if err := termios.Tcsetattr(inp.input.Fd(), termios.TCSANOW, &inp.cbreakAttr); err != nil {
		return nil, curated.Errorf(TermError, err)
	}

	go func() {
		b := make([]byte, 1)
		for {
			n, err := inp.input.Read(b)
			if err != nil {
				close(inp.Presses)
				return
			}
			if n == 1 {
				inp.Presses <- rune(b[0])
			}
		}
	}()

	return inp, nil
}

// restore the terminal to canonical mode
func (inp *rawInput) restore() {
	_ = termios.Tcsetattr(inp.input.Fd(), termios.TCSANOW, &inp.canAttr)
}
