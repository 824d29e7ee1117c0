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

// Package panel is the terminal front panel of an emulated machine: the
// digits and lamps drawn with terminal styling, the keypad driven from
// the keyboard. it is deliberately plain, there is no windowing system
// anywhere in the project.
package panel

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/tabletop/hardware"
)

// how long a keypress holds the emulated button down. terminals don't report
// key releases so this is necessarily an approximation of a human prod
const keyHold = 150 * time.Millisecond

var (
	ledStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	lampOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lampOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

// Panel connects a machine to the controlling terminal
type Panel struct {
	machine *hardware.Machine
	input   *rawInput
	keymap  map[rune]action

	// keys currently held down and when to let go of them
	held map[rune]time.Time

	// the machine's display has changed since the last draw
	dirty bool
}

// NewPanel is the preferred method of initialisation for the Panel type
func NewPanel(m *hardware.Machine) (*Panel, error) {
	pnl := &Panel{
		machine: m,
		held:    make(map[rune]time.Time),
		dirty:   true,
	}

	if m.CmpChess != nil {
		pnl.keymap = cmpchessKeymap(m)
	} else {
		pnl.keymap = intellect02Keymap(m)
	}

	m.Panel.OnUpdate = func() { pnl.dirty = true }

	var err error
	pnl.input, err = newRawInput()
	if err != nil {
		return nil, err
	}

	return pnl, nil
}

// Run the machine against the terminal until the quit key is pressed. all
// input is applied between machine timeslices, keeping every mutation of the
// hardware in the one execution context
func (pnl *Panel) Run() error {
	defer pnl.cleanup()

	// clear screen and hide cursor
	fmt.Print("\x1b[2J\x1b[?25l")

	return pnl.machine.Run(func() (bool, error) {
		// releases first so a repeated keypress re-triggers cleanly
		now := time.Now()
		for r, deadline := range pnl.held {
			if now.After(deadline) {
				pnl.keymap[r].release()
				delete(pnl.held, r)
			}
		}

		for {
			select {
			case r, ok := <-pnl.input.Presses:
				if !ok || r == 'q' || r == 0x03 {
					return false, nil
				}
				if act, ok := pnl.keymap[r]; ok {
					act.press()
					pnl.held[r] = now.Add(keyHold)
				}
				continue
			default:
			}
			break
		}

		if pnl.dirty {
			pnl.dirty = false
			pnl.draw()
		}

		return true, nil
	})
}

func (pnl *Panel) cleanup() {
	for r := range pnl.held {
		pnl.keymap[r].release()
	}
	pnl.input.restore()
	fmt.Print("\x1b[?25h\n")
}

func (pnl *Panel) draw() {
	m := pnl.machine

	digits := make([]string, m.Panel.NumDigits())
	for i := range digits {
		// leftmost digit on screen is the highest numbered digit line
		digits[i] = ledStyle.Render(sevenSeg(m.Panel.Digit(m.Panel.NumDigits() - 1 - i)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, digits...)

	if m.Intellect != nil {
		lamps := lipgloss.JoinVertical(lipgloss.Left,
			lamp("lose", m.Panel.Lamp(0)),
			lamp("win", m.Panel.Lamp(1)),
			lamp("beep", m.Panel.Lamp(2)),
		)
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", lamps)
	}

	legend := "a-h 1-8: keypad  r: reset  q: quit"
	if m.Intellect != nil {
		legend = "a-h: squares  v l s: function  enter: input  del: erase  r: reset  q: quit"
	}

	// draw from the home position. the frame never moves so there is no need
	// to clear
	fmt.Print("\x1b[H")
	fmt.Println(frameStyle.Render(row))
	fmt.Println(captionStyle.Render(legend))
}

func lamp(caption string, on bool) string {
	if on {
		return lampOnStyle.Render("● " + caption)
	}
	return lampOffStyle.Render("○ " + caption)
}
