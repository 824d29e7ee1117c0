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

// Package cmpchess implements the I/O hardware of the CompuChess and its
// better known clone, the Novag Chess Champion MK I. the machine is an F8
// system with a 4-digit 7-segment display and a 4x4 keypad, the display
// strobed through two output ports and the keypad scanned back through the
// same data bus.
//
// the CPU itself is a collaborator attached to the machine, this package
// models everything the CPU talks to.
package cmpchess

import (
	"fmt"
	"time"

	"github.com/jetsetilly/tabletop/hardware/bus"
	"github.com/jetsetilly/tabletop/hardware/clock"
	"github.com/jetsetilly/tabletop/hardware/display"
	"github.com/jetsetilly/tabletop/hardware/keypad"
)

// NumDigits is the number of digits in the display panel
const NumDigits = 4

// the hold-off period for a deselected digit and the period of the display's
// blink oscillator. the blink period is an approximation, the real oscillator
// is an RC circuit
const (
	decayDelay  = 20 * time.Millisecond
	blinkPeriod = 250 * time.Millisecond
)

// dpOnly is the segment data byte with only the decimal point bit set. the
// decimal point drives the panel's blink quirk, see update()
const dpOnly = 0x01

// Port addresses the driver registers are bound to by default. the F8 decodes
// the display through its own I/O ports
const (
	PortData   = 0x00
	PortSelect = 0x01
)

// CmpChess is the peripheral and display hardware of the chess machine
type CmpChess struct {
	panel  *display.Panel
	Keypad *keypad.Matrix

	decay *display.DecayBank
	blink *clock.Ticker

	// raw select state as last written. active low: a clear bit means the
	// digit is driven this instant
	digitSelect uint8

	// digits that should currently render. lags digitSelect by the decay
	// delay on a deselect, set directly on a select
	digitActive uint8

	// last written segment byte, shared by every driven digit. also the
	// keypad's column select bus
	digitData uint8

	// phase of the blink oscillator
	blinkPhase bool
}

// NewCmpChess is the preferred method of initialisation for the CmpChess
// type. the supplied clock sequences the decay timers and the blink
// oscillator
func NewCmpChess(clk *clock.Clock, panel *display.Panel) *CmpChess {
	cc := &CmpChess{
		panel:  panel,
		Keypad: &keypad.Matrix{},
	}
	cc.decay = display.NewDecayBank(clk, NumDigits, decayDelay, cc.decayExpire)
	cc.blink = clk.NewTicker(blinkPeriod, cc.blinkTick)
	cc.Reset()
	return cc
}

func (cc *CmpChess) String() string {
	return fmt.Sprintf("select=%02x active=%02x data=%02x blink=%v",
		cc.digitSelect, cc.digitActive, cc.digitData, cc.blinkPhase)
}

// Plug binds the driver's registers to their port addresses
func (cc *CmpChess) Plug(pts *bus.Ports) {
	pts.BindRead(PortData, "INPUT", cc.ReadInputs)
	pts.BindWrite(PortData, "DATA", cc.WriteData)
	pts.BindWrite(PortSelect, "SELECT", cc.WriteSelect)
}

// Reset emulates the L/S switch, which is tied to the CPU's RESET pin. select
// state goes to the all-deselected sentinel and rendered output blanks
// immediately, bypassing any decay in progress
func (cc *CmpChess) Reset() {
	cc.digitSelect = 0xff
	cc.digitActive = 0x00
	cc.digitData = 0x00
	cc.decay.Stop()
	for i := 0; i < NumDigits; i++ {
		cc.panel.SetDigit(i, 0)
	}
}

// WriteData stores the segment data byte and recomputes the display. the same
// byte doubles as the keypad's column select, see ReadInputs()
func (cc *CmpChess) WriteData(data uint8) {
	cc.digitData = data
	cc.update()
}

// WriteSelect stores the digit select byte. d0-d3 select digits, active low.
// the digits are strobed, so a digit being deselected is held over by its
// decay timer rather than blanked, preventing flicker or a stuck display
func (cc *CmpChess) WriteSelect(data uint8) {
	for i := 0; i < NumDigits; i++ {
		b := uint8(1) << i

		// deselect edge: arm the hold-off timer
		if ^cc.digitSelect&data&b != 0 {
			cc.decay.Arm(i)
		}

		// a driven digit is active immediately, superseding any pending decay
		// through the guard in decayExpire()
		if data&b == 0 {
			cc.digitActive |= b
		}
	}

	cc.digitSelect = data
	cc.update()
}

// ReadInputs scans the keypad. the segment data byte acts as the scan's
// column select and the raw byte itself appears on the port, with the scan
// results OR'd over it
func (cc *CmpChess) ReadInputs() uint8 {
	return cc.digitData | cc.Keypad.Scan(cc.digitData)
}

// update recomputes the rendered pattern of every driven digit. deselected
// digits are left holding their previous pattern; the decay bank blanks them
// in its own time.
//
// the panel has a blink quirk: the decimal point only lights when it is the
// sole held-high segment, and holding it high puts the whole digit into a
// periodic flash driven by the blink oscillator
func (cc *CmpChess) update() {
	for i := 0; i < NumDigits; i++ {
		if cc.digitSelect>>i&0x01 == 0x00 {
			mask := uint8(0x7f)
			if cc.digitData == dpOnly {
				mask = 0x80
			}
			if cc.blinkPhase && cc.digitData&dpOnly != 0 {
				mask = 0x00
			}
			cc.panel.SetDigit(i, display.Bitswap8(cc.digitData, 0, 2, 1, 3, 4, 5, 6, 7)&mask)
		}
	}
}

// decayExpire is the decay bank callback. the guard against the current
// select state makes a stale expiry a no-op: if the digit was re-driven while
// the timer was pending there is nothing to do
func (cc *CmpChess) decayExpire(line int) {
	if cc.digitSelect>>line&0x01 == 0x01 {
		cc.digitActive &^= 1 << line
		cc.panel.SetDigit(line, 0)
	}
}

// blinkTick is the blink oscillator callback
func (cc *CmpChess) blinkTick() {
	cc.blinkPhase = !cc.blinkPhase
	cc.update()
}
