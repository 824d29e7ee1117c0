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

package cmpchess_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/tabletop/hardware/bus"
	"github.com/jetsetilly/tabletop/hardware/clock"
	"github.com/jetsetilly/tabletop/hardware/cmpchess"
	"github.com/jetsetilly/tabletop/hardware/display"
	"github.com/jetsetilly/tabletop/test"
)

func newDriver() (*clock.Clock, *display.Panel, *cmpchess.CmpChess) {
	clk := clock.NewClock()
	pnl := display.NewPanel(cmpchess.NumDigits, 0)
	return clk, pnl, cmpchess.NewCmpChess(clk, pnl)
}

func TestDigitStrobe(t *testing.T) {
	_, pnl, cc := newDriver()

	// drive digit 0 with the pattern for "2". the segment byte is in the
	// data-register bit order, the panel sees it rewired
	cc.WriteSelect(0xfe)
	cc.WriteData(0xdc)
	test.Equate(t, pnl.Digit(0), 0x5b)
	test.Equate(t, pnl.Digit(1), 0x00)

	// moving the strobe to digit 1 leaves digit 0 holding its pattern
	cc.WriteSelect(0xfd)
	cc.WriteData(0xf4)
	test.Equate(t, pnl.Digit(0), 0x5b)
	test.Equate(t, pnl.Digit(1), 0x4f)
}

func TestRecomputeIdempotent(t *testing.T) {
	_, pnl, cc := newDriver()

	updates := 0
	pnl.OnUpdate = func() { updates++ }

	cc.WriteSelect(0xfe)
	cc.WriteData(0xdc)
	test.Equate(t, updates, 1)

	// rewriting the same registers recomputes to the same patterns. the
	// panel sees no change
	cc.WriteSelect(0xfe)
	cc.WriteData(0xdc)
	test.Equate(t, updates, 1)
}

func TestDigitDecay(t *testing.T) {
	clk, pnl, cc := newDriver()

	cc.WriteSelect(0xfe)
	cc.WriteData(0xdc)
	test.Equate(t, pnl.Digit(0), 0x5b)

	// deselecting does not blank the digit, it arms the hold-off timer
	cc.WriteSelect(0xff)
	test.Equate(t, pnl.Digit(0), 0x5b)

	clk.Advance(19 * time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0x5b)

	clk.Advance(time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0x00)
}

func TestDigitDecaySuperseded(t *testing.T) {
	clk, pnl, cc := newDriver()

	cc.WriteSelect(0xfe)
	cc.WriteData(0xdc)
	cc.WriteSelect(0xff)

	// re-driving the digit before the hold-off elapses keeps it lit. the
	// stale timer fires as a no-op
	clk.Advance(10 * time.Millisecond)
	cc.WriteSelect(0xfe)
	clk.Advance(15 * time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0x5b)
}

func TestDecimalPointBlink(t *testing.T) {
	clk, pnl, cc := newDriver()

	// the decimal point only lights when it is the sole held-high segment
	cc.WriteSelect(0xfe)
	cc.WriteData(0x01)
	test.Equate(t, pnl.Digit(0), 0x80)

	// and holding it high flashes the digit with the blink oscillator
	clk.Advance(250 * time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0x00)
	clk.Advance(250 * time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0x80)
}

func TestDecimalPointSuppressed(t *testing.T) {
	clk, pnl, cc := newDriver()

	// decimal point held high alongside other segments: the digit renders
	// without the point but still blinks
	cc.WriteSelect(0xfe)
	cc.WriteData(0xdd)
	test.Equate(t, pnl.Digit(0), 0x5b)

	clk.Advance(250 * time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0x00)
}

func TestKeypadScan(t *testing.T) {
	_, _, cc := newDriver()

	// with nothing pressed the input port reads back the segment byte
	cc.WriteData(0x20)
	test.Equate(t, cc.ReadInputs(), 0x20)

	// a button on line 2 under the driven column adds the line flag
	cc.Keypad.Set(2, 0x20)
	test.Equate(t, cc.ReadInputs(), 0x24)

	cc.Keypad.Release(2, 0x20)
	test.Equate(t, cc.ReadInputs(), 0x20)
}

func TestReset(t *testing.T) {
	clk, pnl, cc := newDriver()

	cc.WriteSelect(0xfe)
	cc.WriteData(0xdc)
	cc.WriteSelect(0xff)

	// reset blanks immediately, bypassing the decay in progress
	cc.Reset()
	test.Equate(t, pnl.Digit(0), 0x00)

	// and the voided decay timer never fires
	clk.Advance(time.Second)
	test.Equate(t, pnl.Digit(0), 0x00)
	test.Equate(t, cc.ReadInputs(), 0x00)
}

func TestPlug(t *testing.T) {
	_, pnl, cc := newDriver()

	pts := bus.NewPorts()
	cc.Plug(pts)

	pts.Write8(cmpchess.PortSelect, 0xfe)
	pts.Write8(cmpchess.PortData, 0xdc)
	test.Equate(t, pnl.Digit(0), 0x5b)
	test.Equate(t, pts.Read8(cmpchess.PortData), 0xdc)
}
