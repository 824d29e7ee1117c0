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

// Package display implements the strobed LED panel shared by the tabletop
// machines. the panel itself is a dumb latch: one segment byte per digit and
// one bool per lamp, holding whatever the driver last wrote. all of the
// multiplexing cleverness (select masks, strobe decay, blink) lives in the
// drivers, with the DecayBank in this package providing the hold-off timers
// that stop a strobed display flickering.
package display

import (
	"fmt"
	"strings"
)

// Segment bit assignment for a rendered digit. bits 0 to 6 are segments A to
// G in the conventional order, bit 7 is the decimal point
const (
	SegA  = 0x01
	SegB  = 0x02
	SegC  = 0x04
	SegD  = 0x08
	SegE  = 0x10
	SegF  = 0x20
	SegG  = 0x40
	SegDP = 0x80
)

// Panel is the render sink written to by a driver's display update. the
// presentation layer reads it back, either directly or through the OnUpdate
// callback
type Panel struct {
	digits []uint8
	lamps  []bool

	// OnUpdate is called whenever a digit or lamp changes value. it is never
	// called for a write that doesn't change anything, so the callback also
	// serves as a cheap dirty flag for the presentation layer
	OnUpdate func()
}

// NewPanel is the preferred method of initialisation for the Panel type
func NewPanel(numDigits int, numLamps int) *Panel {
	return &Panel{
		digits: make([]uint8, numDigits),
		lamps:  make([]bool, numLamps),
	}
}

func (p *Panel) String() string {
	s := strings.Builder{}
	for i := range p.digits {
		s.WriteString(fmt.Sprintf("digit%d=%02x ", i, p.digits[i]))
	}
	for i := range p.lamps {
		s.WriteString(fmt.Sprintf("lamp%d=%v ", i, p.lamps[i]))
	}
	return strings.TrimSpace(s.String())
}

// NumDigits returns the number of digits in the panel
func (p *Panel) NumDigits() int {
	return len(p.digits)
}

// NumLamps returns the number of lamps in the panel
func (p *Panel) NumLamps() int {
	return len(p.lamps)
}

// SetDigit latches a segment pattern into the numbered digit
func (p *Panel) SetDigit(digit int, segments uint8) {
	if p.digits[digit] == segments {
		return
	}
	p.digits[digit] = segments
	if p.OnUpdate != nil {
		p.OnUpdate()
	}
}

// Digit returns the segment pattern currently latched into the numbered digit
func (p *Panel) Digit(digit int) uint8 {
	return p.digits[digit]
}

// SetLamp latches the on/off state of the numbered lamp
func (p *Panel) SetLamp(lamp int, on bool) {
	if p.lamps[lamp] == on {
		return
	}
	p.lamps[lamp] = on
	if p.OnUpdate != nil {
		p.OnUpdate()
	}
}

// Lamp returns the on/off state of the numbered lamp
func (p *Panel) Lamp(lamp int) bool {
	return p.lamps[lamp]
}

// Blank every digit and lamp. used on reset, which clears rendered output
// immediately with no decay
func (p *Panel) Blank() {
	for i := range p.digits {
		p.SetDigit(i, 0)
	}
	for i := range p.lamps {
		p.SetLamp(i, false)
	}
}

// Snapshot makes a copy of the panel latches
func (p *Panel) Snapshot() *Panel {
	n := &Panel{
		digits: make([]uint8, len(p.digits)),
		lamps:  make([]bool, len(p.lamps)),
	}
	copy(n.digits, p.digits)
	copy(n.lamps, p.lamps)
	return n
}

// Plumb the contents of a snapshotted panel back into this panel
func (p *Panel) Plumb(state *Panel) {
	copy(p.digits, state.digits)
	copy(p.lamps, state.lamps)
	if p.OnUpdate != nil {
		p.OnUpdate()
	}
}
