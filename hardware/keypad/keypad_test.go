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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/tabletop/hardware/keypad"
	"github.com/jetsetilly/tabletop/test"
)

func TestMatrixScan(t *testing.T) {
	mtx := &keypad.Matrix{}

	// nothing pressed, nothing read back
	test.Equate(t, mtx.Scan(0xff), 0x00)

	// a button on line 2 with segment bit 5 held. the low nibble reports the
	// line, the high nibble reports the button
	mtx.Set(2, 0x20)
	test.Equate(t, mtx.Scan(0x24), 0x24)

	// scan with the segment bit clear sees nothing in the low nibble and the
	// line strobe (bit 2) not asserted means nothing in the high nibble either
	test.Equate(t, mtx.Scan(0x00), 0x00)

	// strobing the line without the segment bit reads the button mask back in
	// the high nibble only
	test.Equate(t, mtx.Scan(0x04), 0x20)

	mtx.Release(2, 0x20)
	test.Equate(t, mtx.Scan(0x24), 0x00)
}

func TestMatrixMultiplePresses(t *testing.T) {
	mtx := &keypad.Matrix{}
	mtx.Press(0, 0x80)
	mtx.Press(3, 0x10)

	test.Equate(t, mtx.Line(0), 0x80)
	test.Equate(t, mtx.Line(3), 0x10)

	// both directions at once. segment bits 7 and 4 held, lines 0 and 3
	// strobed
	test.Equate(t, mtx.Scan(0x99), 0x99)
}

func TestLinesScancode(t *testing.T) {
	var lns keypad.Lines

	// no key held reads back the safe sentinel
	test.Equate(t, lns.Scancode(), keypad.NoKey)

	// board squares A1..H8 are encoded bits 13 down to 6 and produce
	// scancodes 1..8
	for i := 0; i < 8; i++ {
		lns.SetEncoded(1 << (13 - i))
		test.Equate(t, lns.Scancode(), uint8(i+1))
	}

	// the function buttons below the board
	lns.SetEncoded(1 << 4)
	test.Equate(t, lns.Scancode(), 10)
	lns.SetEncoded(1 << 3)
	test.Equate(t, lns.Scancode(), 11)

	// highest set bit wins when several keys are held
	lns.SetEncoded(1<<13 | 1<<6)
	test.Equate(t, lns.Scancode(), 1)

	lns.SetEncoded(0)
	test.Equate(t, lns.Scancode(), keypad.NoKey)
}

func TestLinesDirectNibble(t *testing.T) {
	var lns keypad.Lines

	// bit 4 of the direct lines is tied high so the idle read is 0xf0
	test.Equate(t, lns.DirectNibble(), 0xf0)

	// pressing a direct button pulls its line low
	lns.SetDirect(0x02)
	test.Equate(t, lns.DirectNibble(), 0xd0)

	lns.SetDirect(0x0e)
	test.Equate(t, lns.DirectNibble(), 0x10)

	lns.SetDirect(0)
	test.Equate(t, lns.DirectNibble(), 0xf0)
}

func TestLinesSnapshot(t *testing.T) {
	var lns keypad.Lines
	lns.SetEncoded(1 << 4)
	lns.SetDirect(0x04)

	st := lns.Snapshot()
	lns.SetEncoded(0)
	lns.SetDirect(0)

	test.Equate(t, st.Scancode(), 10)
	test.Equate(t, st.DirectNibble(), 0xb0)
}
