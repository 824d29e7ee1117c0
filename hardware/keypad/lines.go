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

package keypad

import "math/bits"

// NoKey is the scancode produced by an encoded group with no button pressed.
// the real hardware's behaviour for this case is unverified (a zero input to
// the priority chain is a boundary the original designers may never have
// considered) so we settle on the code that falls out of a 32-bit
// count-leading-zeros: 32 - ScancodeOffset = 0x0f, which no button produces
const NoKey = 0x0f

// ScancodeOffset is subtracted from the leading-zero count of the encoded
// group to produce the scancode. with buttons wired to bits 3 to 13 this
// yields scancodes 1 to 11
const ScancodeOffset = 17

// Lines is the non-matrixed button hardware of the cartridge console. the
// main group of buttons feeds a priority chain of logic gates that encodes
// whichever single line is high into a 4-bit scancode. a second group of
// dedicated buttons is read directly, inverted, on the upper half of the
// input port
type Lines struct {
	// encoded group. one bit per button, only one expected high at a time
	encoded uint16

	// direct group. bits 1 to 3, bit 0 is unconnected
	direct uint8
}

// SetEncoded replaces the encoded group's line state
func (ln *Lines) SetEncoded(lines uint16) {
	ln.encoded = lines
}

// Encoded returns the encoded group's line state
func (ln *Lines) Encoded() uint16 {
	return ln.encoded
}

// SetDirect replaces the direct group's button state
func (ln *Lines) SetDirect(buttons uint8) {
	ln.direct = buttons & 0x0f
}

// Direct returns the direct group's button state
func (ln *Lines) Direct() uint8 {
	return ln.direct
}

// Scancode encodes the highest set line of the encoded group into a 4-bit
// code. an all-clear group encodes to NoKey
func (ln *Lines) Scancode() uint8 {
	return uint8(bits.LeadingZeros32(uint32(ln.encoded)) - ScancodeOffset)
}

// DirectNibble returns the direct group inverted and shifted into the upper
// nibble. the buttons pull their port lines low when pressed; the unconnected
// bit 0 inverts to a bit that always reads high (it is effectively wired to
// Vcc)
func (ln *Lines) DirectNibble() uint8 {
	return ^ln.direct << 4 & 0xf0
}

// Snapshot makes a copy of the line state
func (ln *Lines) Snapshot() *Lines {
	n := *ln
	return &n
}
