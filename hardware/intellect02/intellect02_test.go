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

package intellect02_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/tabletop/hardware/bus"
	"github.com/jetsetilly/tabletop/hardware/clock"
	"github.com/jetsetilly/tabletop/hardware/display"
	"github.com/jetsetilly/tabletop/hardware/intellect02"
	"github.com/jetsetilly/tabletop/test"
)

func newDriver() (*clock.Clock, *display.Panel, *intellect02.Intellect02) {
	clk := clock.NewClock()
	pnl := display.NewPanel(intellect02.NumDigits, 3)
	return clk, pnl, intellect02.NewIntellect02(clk, pnl)
}

func TestDigitLatch(t *testing.T) {
	clk, pnl, in := newDriver()

	// select every digit and write a segment byte. the byte latches into all
	// four, remapped to the physical segment wiring
	in.WriteControl(0x0f)
	in.WriteDigit(0xab)
	for i := 0; i < intellect02.NumDigits; i++ {
		test.Equate(t, pnl.Digit(i), 0xea)
	}

	// deselecting holds the digits for the decay period
	in.WriteControl(0x00)
	clk.Advance(24 * time.Millisecond)
	for i := 0; i < intellect02.NumDigits; i++ {
		test.Equate(t, pnl.Digit(i), 0xea)
	}

	// and then they go dark
	clk.Advance(time.Millisecond)
	for i := 0; i < intellect02.NumDigits; i++ {
		test.Equate(t, pnl.Digit(i), 0x00)
	}
}

func TestUpdateCoalescing(t *testing.T) {
	clk, pnl, in := newDriver()

	in.WriteDigit(0xab)

	// a control write takes effect on the panel a short fixed delay later
	in.WriteControl(0x01)
	test.Equate(t, pnl.Digit(0), 0x00)
	clk.Advance(14 * time.Microsecond)
	test.Equate(t, pnl.Digit(0), 0x00)
	clk.Advance(time.Microsecond)
	test.Equate(t, pnl.Digit(0), 0xea)

	// rapid successive control writes share one pending recompute
	in.WriteControl(0x03)
	in.WriteControl(0x07)
	clk.Advance(15 * time.Microsecond)
	test.Equate(t, pnl.Digit(2), 0xea)
}

func TestLamps(t *testing.T) {
	clk, pnl, in := newDriver()

	in.WriteControl(0x30)
	clk.Advance(15 * time.Microsecond)
	test.Equate(t, pnl.Lamp(intellect02.LampLose), true)
	test.Equate(t, pnl.Lamp(intellect02.LampWin), true)

	// a deselected lamp stays lit through the decay period, like the digits
	in.WriteControl(0x00)
	clk.Advance(24 * time.Millisecond)
	test.Equate(t, pnl.Lamp(intellect02.LampLose), true)

	clk.Advance(time.Millisecond)
	test.Equate(t, pnl.Lamp(intellect02.LampLose), false)
	test.Equate(t, pnl.Lamp(intellect02.LampWin), false)
}

func TestBeeper(t *testing.T) {
	_, pnl, in := newDriver()

	// the beeper enable is not strobed. it follows the control write
	// immediately and has no decay
	in.WriteControl(0x80)
	test.Equate(t, pnl.Lamp(intellect02.LampBeeper), true)
	in.WriteControl(0x00)
	test.Equate(t, pnl.Lamp(intellect02.LampBeeper), false)
}

func TestReselectBeforeDecay(t *testing.T) {
	clk, pnl, in := newDriver()

	in.WriteControl(0x01)
	in.WriteDigit(0xab)
	in.WriteControl(0x00)

	// re-driving the digit before the hold-off elapses keeps it lit and the
	// stale expiry is a no-op
	clk.Advance(10 * time.Millisecond)
	in.WriteControl(0x01)
	clk.Advance(20 * time.Millisecond)
	test.Equate(t, pnl.Digit(0), 0xea)
}

func TestReset(t *testing.T) {
	clk, pnl, in := newDriver()

	in.WriteControl(0x3f)
	in.WriteDigit(0xab)
	in.WriteControl(0x00)

	// reset blanks immediately, bypassing the decay in progress
	in.Reset()
	test.Equate(t, pnl.Digit(0), 0x00)
	test.Equate(t, pnl.Lamp(intellect02.LampLose), false)

	clk.Advance(time.Second)
	test.Equate(t, pnl.Digit(0), 0x00)
}

func TestInputs(t *testing.T) {
	_, _, in := newDriver()

	// no key held: sentinel scancode in the low nibble, idle direct lines in
	// the high nibble
	test.Equate(t, in.ReadInputs(), 0xff)

	in.Keypad.SetEncoded(1 << 13)
	test.Equate(t, in.ReadInputs(), 0xf1)

	in.Keypad.SetEncoded(0)
	in.Keypad.SetDirect(0x02)
	test.Equate(t, in.ReadInputs(), 0xdf)
}

func TestPlug(t *testing.T) {
	clk, pnl, in := newDriver()

	pts := bus.NewPorts()
	in.Plug(pts)

	pts.Write8(intellect02.PortControl, 0x01)
	pts.Write8(intellect02.PortDigit, 0xab)
	clk.Advance(15 * time.Microsecond)
	test.Equate(t, pnl.Digit(0), 0xea)
	test.Equate(t, pts.Read8(intellect02.PortInput), 0xff)
}
