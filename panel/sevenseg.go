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
	"strings"

	"github.com/jetsetilly/tabletop/hardware/display"
)

// sevenSeg draws a segment byte as three rows of text:
//
//	 _
//	|_|
//	|_|.
//
// segment assignment is as described in the display package, bit 7 being the
// decimal point
func sevenSeg(segments uint8) string {
	seg := func(mask uint8, lit string) string {
		if segments&mask != 0 {
			return lit
		}
		return strings.Repeat(" ", len(lit))
	}

	s := strings.Builder{}
	s.WriteString(" " + seg(display.SegA, "_") + "  \n")
	s.WriteString(seg(display.SegF, "|") + seg(display.SegG, "_") + seg(display.SegB, "|") + " \n")
	s.WriteString(seg(display.SegE, "|") + seg(display.SegD, "_") + seg(display.SegC, "|") + seg(display.SegDP, "."))
	return s.String()
}
