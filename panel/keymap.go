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
	"github.com/jetsetilly/tabletop/hardware"
)

// action is the pair of state changes a mapped key makes on the machine.
// terminals don't report key releases so the panel calls release itself a
// moment after press
type action struct {
	press   func()
	release func()
}

// the chess machine's 16 keys sit in a 4x4 matrix, four keys per line in bits
// 4 to 7
func cmpchessKeymap(m *hardware.Machine) map[rune]action {
	keymap := make(map[rune]action)

	matrix := func(r rune, line int, button uint8) {
		keymap[r] = action{
			press:   func() { m.CmpChess.Keypad.Press(line, button) },
			release: func() { m.CmpChess.Keypad.Release(line, button) },
		}
	}

	for i, r := range "abcd" {
		matrix(r, 0, 0x80>>i)
	}
	for i, r := range "efgh" {
		matrix(r, 1, 0x80>>i)
	}
	for i, r := range "1234" {
		matrix(r, 2, 0x80>>i)
	}
	for i, r := range "5678" {
		matrix(r, 3, 0x80>>i)
	}

	// the L/S switch, tied to the CPU's RESET pin
	keymap['r'] = action{
		press:   func() { m.Reset(true) },
		release: func() { m.Reset(false) },
	}

	return keymap
}

// the console's main button group feeds the scancode encoder one line per
// button. the dedicated buttons are on the direct group
func intellect02Keymap(m *hardware.Machine) map[rune]action {
	keymap := make(map[rune]action)

	kp := m.Intellect.Keypad

	encoded := func(r rune, line int) {
		b := uint16(1) << line
		keymap[r] = action{
			press:   func() { kp.SetEncoded(kp.Encoded() | b) },
			release: func() { kp.SetEncoded(kp.Encoded() &^ b) },
		}
	}

	// board squares A1 to H8, highest line first
	for i, r := range "abcdefgh" {
		encoded(r, 13-i)
	}
	encoded('v', 3) // view position
	encoded('l', 4) // game level

	direct := func(r rune, button uint8) {
		keymap[r] = action{
			press:   func() { kp.SetDirect(kp.Direct() | button) },
			release: func() { kp.SetDirect(kp.Direct() &^ button) },
		}
	}

	direct('\r', 0x02) // input
	direct('s', 0x04)  // game select
	direct(0x7f, 0x08) // erase

	// the reset button, tied to the CPU's RESET pin
	keymap['r'] = action{
		press:   func() { m.Reset(true) },
		release: func() { m.Reset(false) },
	}

	return keymap
}
