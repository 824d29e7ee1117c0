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

// Package keypad models the button hardware of the tabletop machines. the
// package owns nothing but the currently-pressed state, set by the
// presentation layer and polled synchronously by the drivers when the running
// program reads the input register.
package keypad

// NumMatrixLines is the size of the 4x4 button matrix
const NumMatrixLines = 4

// Matrix is a 4x4 button matrix scanned through the segment data bus. each of
// the four lines carries up to four buttons in bits 4 to 7, the column
// positions driven by the bus.
//
// the scan is bidirectional. the low nibble of the scan result flags, per
// line, whether any pressed button on that line coincides with a driven
// column bit; the high nibble is the OR of the pressed masks of every line
// whose index bit is driven in the low nibble of the bus. the same matrix
// therefore answers correctly whether the program is treating rows or columns
// as the output side
type Matrix struct {
	lines [NumMatrixLines]uint8
}

// Set replaces the pressed mask for a line. buttons occupy bits 4 to 7
func (mx *Matrix) Set(line int, pressed uint8) {
	mx.lines[line] = pressed & 0xf0
}

// Press sets a single button in a line's pressed mask
func (mx *Matrix) Press(line int, button uint8) {
	mx.lines[line] |= button & 0xf0
}

// Release clears a single button in a line's pressed mask
func (mx *Matrix) Release(line int, button uint8) {
	mx.lines[line] &^= button
}

// Line returns the pressed mask for a line
func (mx *Matrix) Line(line int) uint8 {
	return mx.lines[line]
}

// Scan the matrix against the current segment data byte, which doubles as the
// column select bus. the result contains only the scan contribution, the
// driver ORs it with whatever else appears on the input port
func (mx *Matrix) Scan(segdata uint8) uint8 {
	var data uint8

	// d0-d3: per-line coincidence with the driven column bits in d4-d7
	for i := 0; i < NumMatrixLines; i++ {
		if segdata&mx.lines[i] != 0 {
			data |= 1 << i
		}
	}

	// d4-d7: pressed masks of lines selected by d0-d3
	for i := 0; i < NumMatrixLines; i++ {
		if segdata>>i&0x01 == 0x01 {
			data |= mx.lines[i]
		}
	}

	return data
}

// Snapshot makes a copy of the matrix state
func (mx *Matrix) Snapshot() *Matrix {
	n := *mx
	return &n
}
