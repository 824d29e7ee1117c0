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

package hardware

import (
	"time"

	"github.com/jetsetilly/tabletop/hardware/bus"
	"github.com/jetsetilly/tabletop/hardware/clock"
	"github.com/jetsetilly/tabletop/hardware/clocks"
	"github.com/jetsetilly/tabletop/hardware/cmpchess"
	"github.com/jetsetilly/tabletop/hardware/display"
	"github.com/jetsetilly/tabletop/hardware/intellect02"
)

// CPU is the interface required of an attached CPU core. instruction
// interpretation is outside this project, we only care that a core can
// execute an instruction against the port bus it was attached with and tell
// us how many cycles it took.
//
// a Machine runs happily with no CPU attached at all, which is how the tests
// and the demo mode drive the hardware
type CPU interface {
	// execute one instruction, returning the number of CPU cycles consumed
	Step() (int, error)

	// state of the RESET pin
	Reset(asserted bool)
}

// timeslice of virtual time to advance per Step() when no CPU is attached
const freerunTimeslice = 100 * time.Microsecond

// Machine is the main container for an emulated tabletop console. exactly one
// of CmpChess and Intellect is non-nil, depending on which constructor was
// used
type Machine struct {
	Clock *clock.Clock
	Ports *bus.Ports
	Panel *display.Panel

	CmpChess  *cmpchess.CmpChess
	Intellect *intellect02.Intellect02

	cpu   CPU
	cycle time.Duration

	// current state of the reset line. driver reset happens on the rising
	// edge only
	resetLine bool
}

func newMachine(hz float64) *Machine {
	m := &Machine{
		Clock: clock.NewClock(),
		Ports: bus.NewPorts(),
	}
	m.cycle = time.Duration(float64(time.Second) / hz)
	return m
}

// NewCmpChess creates a machine emulating the CompuChess
func NewCmpChess() *Machine {
	m := newMachine(clocks.CmpChess)
	m.Panel = display.NewPanel(cmpchess.NumDigits, 0)
	m.CmpChess = cmpchess.NewCmpChess(m.Clock, m.Panel)
	m.CmpChess.Plug(m.Ports)
	return m
}

// NewMK1 creates a machine emulating the Novag Chess Champion MK I. the MK I
// is the same hardware as the CompuChess with a slightly faster CPU clock
func NewMK1() *Machine {
	m := newMachine(clocks.MK1)
	m.Panel = display.NewPanel(cmpchess.NumDigits, 0)
	m.CmpChess = cmpchess.NewCmpChess(m.Clock, m.Panel)
	m.CmpChess.Plug(m.Ports)
	return m
}

// NewIntellect02 creates a machine emulating the Intellect-02
func NewIntellect02() *Machine {
	m := newMachine(clocks.Intellect02)
	m.Panel = display.NewPanel(intellect02.NumDigits, 3)
	m.Intellect = intellect02.NewIntellect02(m.Clock, m.Panel)
	m.Intellect.Plug(m.Ports)
	return m
}

func (m *Machine) String() string {
	if m.CmpChess != nil {
		return m.CmpChess.String()
	}
	return m.Intellect.String()
}

// AttachCPU attaches a CPU core to the machine. the core should address the
// machine through the Ports field. attaching nil detaches any previous core
func (m *Machine) AttachCPU(cpu CPU) {
	m.cpu = cpu
}

// Reset sets the state of the reset line. on the real machines the line is a
// front panel switch tied to the CPU's RESET pin. on the rising edge the
// select state is forced to the all-deselected sentinel and every rendered
// output blanks immediately, with no decay
func (m *Machine) Reset(asserted bool) {
	if asserted && !m.resetLine {
		if m.CmpChess != nil {
			m.CmpChess.Reset()
		} else {
			m.Intellect.Reset()
		}
	}
	m.resetLine = asserted

	if m.cpu != nil {
		m.cpu.Reset(asserted)
	}
}

// Step the machine forward one CPU instruction, or one freerun timeslice if
// no CPU is attached. all timer callbacks falling due in the elapsed virtual
// time are dispatched before Step returns
func (m *Machine) Step() error {
	if m.cpu == nil {
		m.Clock.Advance(freerunTimeslice)
		return nil
	}

	cycles, err := m.cpu.Step()
	if err != nil {
		return err
	}
	m.Clock.Advance(time.Duration(cycles) * m.cycle)

	return nil
}
