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

// Package clocks defines the CPU clock rates of the emulated machines, in Hz.
//
// The CompuChess divides a colourburst crystal by two. The MK I is the same
// board run a little faster. The Intellect-02 has no crystal at all, the
// value below is as measured on a real unit.
package clocks

const (
	CmpChess    = 3579545.0 / 2
	MK1         = 2000000.0
	Intellect02 = 1500000.0
)
