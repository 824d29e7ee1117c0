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

package main

import (
	"github.com/jetsetilly/tabletop/hardware"
	"github.com/jetsetilly/tabletop/hardware/cmpchess"
	"github.com/jetsetilly/tabletop/hardware/intellect02"
)

// demo stands in for a CPU core, multiplexing the display the way firmware
// would: select one digit at a time, put that digit's pattern on the data
// bus, move on. run against the terminal panel it shows the strobe decay and
// blink hardware doing their jobs without any firmware in sight.
//
// it also answers the structural question of what an attached CPU looks like:
// anything that implements hardware.CPU and talks through the machine's port
// bus
type demo struct {
	m *hardware.Machine

	// patterns are raw data register values, not remapped segment patterns
	patterns [4]uint8
	digit    int
	frame    int
}

// segment patterns for the digits 1 to 4 in data register bit order, which
// is not physical segment order. each machine wires the bus to the segment
// pins differently, see the display updates in the two drivers
var (
	cmpchessCount    = [4]uint8{0x60, 0xdc, 0xf4, 0x66}
	intellect02Count = [4]uint8{0x30, 0x6d, 0x79, 0x33}
)

func newDemo(m *hardware.Machine) hardware.CPU {
	d := &demo{m: m}
	if m.CmpChess != nil {
		d.patterns = [4]uint8{
			cmpchessCount[2],
			cmpchessCount[1],
			cmpchessCount[0],
			dpBlink, // flashes, courtesy of the blink quirk
		}
	} else {
		d.patterns = intellect02Count
	}
	return d
}

// the chess panel blinks a digit whose data is exactly the decimal point bit
const dpBlink = 0x01

// cycles consumed per emulated instruction. the real firmware strobes a digit
// for around a millisecond, we approximate with two port writes of ~500
// microseconds each
const demoCycles = 800

// Step implements the hardware.CPU interface
func (d *demo) Step() (int, error) {
	d.digit = (d.digit + 1) % 4
	d.frame++

	if d.m.CmpChess != nil {
		// digit select is active low on the chess machine
		d.m.Ports.Write8(cmpchess.PortSelect, ^(uint8(1) << d.digit))
		d.m.Ports.Write8(cmpchess.PortData, d.patterns[d.digit])
		return demoCycles, nil
	}

	ctrl := uint8(1) << d.digit

	// wave the lamps and the beeper around once a second or so
	if d.frame%2048 < 1024 {
		ctrl |= 0x10
	} else {
		ctrl |= 0x20
	}
	if d.frame%2048 == 0 {
		ctrl |= 0x80
	}

	d.m.Ports.Write8(intellect02.PortControl, ctrl)
	d.m.Ports.Write8(intellect02.PortDigit, d.patterns[d.digit])

	return demoCycles, nil
}

// Reset implements the hardware.CPU interface
func (d *demo) Reset(asserted bool) {
	if asserted {
		d.digit = 0
		d.frame = 0
	}
}
