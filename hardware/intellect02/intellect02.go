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

// Package intellect02 implements the I/O hardware of the Intellect-02, a
// Soviet cartridge game console built around an i8080A clone. the machine has
// a 4-digit 7-segment panel, a win and a lose lamp, a beeper and 16 buttons.
//
// the CPU reaches the hardware through a parallel interface chip. the chip
// itself is out of scope, its three ports surface here as the input, digit
// and control registers.
package intellect02

import (
	"fmt"
	"time"

	"github.com/jetsetilly/tabletop/hardware/bus"
	"github.com/jetsetilly/tabletop/hardware/clock"
	"github.com/jetsetilly/tabletop/hardware/display"
	"github.com/jetsetilly/tabletop/hardware/keypad"
)

// NumDigits is the number of digits in the display panel. NumLines counts the
// strobed lines: four digits plus the two lamps
const (
	NumDigits = 4
	NumLines  = 6
)

// Lamp numbering in the display panel
const (
	LampLose = iota
	LampWin
	LampBeeper
)

// the hold-off period for a deselected line and the coalescing delay for
// display recomputes. rapid successive control writes produce one recompute,
// not many
const (
	decayDelay  = 25 * time.Millisecond
	updateDelay = 15 * time.Microsecond
)

// control register bit assignment
const (
	ctrlDigits = 0x0f
	ctrlLose   = 0x10
	ctrlWin    = 0x20
	ctrlBeeper = 0x80
)

// Port addresses the driver registers are bound to by default, matching the
// parallel interface chip's decode on the real board
const (
	PortInput   = 0xf4
	PortDigit   = 0xf5
	PortControl = 0xf6
)

// Intellect02 is the peripheral and display hardware of the console
type Intellect02 struct {
	panel  *display.Panel
	Keypad *keypad.Lines

	decay  *display.DecayBank
	update *clock.Timer

	// raw select state as last written. active high, d0-d3 digits, d4 lose
	// lamp, d5 win lamp
	ledSelect uint8

	// lines that should currently render. lags ledSelect by the decay delay
	// on a deselect, set directly on a select
	ledActive uint8

	// last written segment byte, already remapped to physical segment order.
	// latched by every selected digit
	digitData uint8
}

// NewIntellect02 is the preferred method of initialisation for the
// Intellect02 type
func NewIntellect02(clk *clock.Clock, panel *display.Panel) *Intellect02 {
	in := &Intellect02{
		panel:  panel,
		Keypad: &keypad.Lines{},
	}
	in.decay = display.NewDecayBank(clk, NumLines, decayDelay, in.decayExpire)
	in.update = clk.NewTimer(func(_ int) { in.updateNow() })
	in.Reset()
	return in
}

func (in *Intellect02) String() string {
	return fmt.Sprintf("select=%02x active=%02x data=%02x", in.ledSelect, in.ledActive, in.digitData)
}

// Plug binds the driver's registers to their port addresses
func (in *Intellect02) Plug(pts *bus.Ports) {
	pts.BindRead(PortInput, "INPUT", in.ReadInputs)
	pts.BindWrite(PortDigit, "DIGIT", in.WriteDigit)
	pts.BindWrite(PortControl, "CONTROL", in.WriteControl)
}

// Reset emulates the reset button, which is tied to the CPU's RESET pin.
// select and active state clear and rendered output blanks immediately,
// bypassing any decay in progress
func (in *Intellect02) Reset() {
	in.ledSelect = 0x00
	in.ledActive = 0x00
	in.digitData = 0x00
	in.decay.Stop()
	in.update.Stop()
	in.panel.Blank()
}

// WriteDigit stores the segment data byte, remapped to the physical segment
// wiring, and recomputes the display
func (in *Intellect02) WriteDigit(data uint8) {
	in.digitData = display.Bitswap8(data, 7, 0, 1, 2, 3, 4, 5, 6)
	in.updateNow()
}

// WriteControl stores the digit/lamp select byte. d0-d3 select digits, d4 and
// d5 the lose and win lamps, all active high. the lines are strobed, so a
// line being deselected is held over by its decay timer rather than cleared.
// d7 enables the beeper.
//
// the recompute is not immediate: at most one is pending at a time, a short
// fixed delay out, coalescing rapid successive writes
func (in *Intellect02) WriteControl(data uint8) {
	for i := 0; i < NumLines; i++ {
		b := uint8(1) << i

		if data&b != 0 {
			// a driven line is active immediately, superseding any pending
			// decay through the guard in decayExpire()
			in.ledActive |= b
		} else if in.ledSelect&b != 0 {
			// deselect edge: arm the hold-off timer
			in.decay.Arm(i)
		}
	}

	in.ledSelect = data

	if !in.update.Enabled() {
		in.update.Adjust(updateDelay, 0)
	}

	// d6 is not connected

	in.panel.SetLamp(LampBeeper, data&ctrlBeeper == ctrlBeeper)
}

// ReadInputs reads the keypad. the main button group arrives as a 4-bit
// scancode in the low nibble, the dedicated buttons inverted in the upper
// nibble
func (in *Intellect02) ReadInputs() uint8 {
	return in.Keypad.Scancode() | in.Keypad.DirectNibble()
}

// updateNow recomputes the rendered output. selected digits latch the current
// segment byte, lines that have fully decayed go blank, and lines in their
// hold-off period keep whatever they last latched. the lamps follow the
// active mask directly
func (in *Intellect02) updateNow() {
	for i := 0; i < NumDigits; i++ {
		b := uint8(1) << i
		if in.ledSelect&b != 0 {
			in.panel.SetDigit(i, in.digitData)
		} else if in.ledActive&b == 0 {
			in.panel.SetDigit(i, 0)
		}
	}

	in.panel.SetLamp(LampLose, in.ledActive&ctrlLose == ctrlLose)
	in.panel.SetLamp(LampWin, in.ledActive&ctrlWin == ctrlWin)
}

// decayExpire is the decay bank callback. the line's active bit takes on the
// current select state, which makes a stale expiry a no-op: a line re-driven
// while the timer was pending is active in both masks
func (in *Intellect02) decayExpire(line int) {
	mask := uint8(1) << line
	in.ledActive = in.ledActive&^mask | in.ledSelect&mask
	in.updateNow()
}
