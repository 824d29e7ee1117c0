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

package display

// Bitswap8 rearranges the bits of v. the bit arguments name source bits from
// the most significant end of the result down: the first argument is the
// source bit placed in result bit 7, the last argument the source bit placed
// in result bit 0.
//
// the drivers use this to express the wiring between the data bus and the
// physical segment pins, which on both machines is not a straight-through
// order
func Bitswap8(v uint8, b7, b6, b5, b4, b3, b2, b1, b0 int) uint8 {
	bits := [8]int{b0, b1, b2, b3, b4, b5, b6, b7}
	var r uint8
	for i, b := range bits {
		r |= (v >> uint(b) & 0x01) << uint(i)
	}
	return r
}
