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
	"github.com/jetsetilly/tabletop/curated"
	"github.com/jetsetilly/tabletop/hardware/cmpchess"
	"github.com/jetsetilly/tabletop/hardware/display"
	"github.com/jetsetilly/tabletop/hardware/intellect02"
)

// sentinel error for the Plumb() function
const PlumbMismatch = "snapshot: state is for a different machine: %s"

// State is a flat snapshot of a machine, produced by the Snapshot() function
// and restored with the Plumb() function. the exact field of the driver state
// that is valid depends on the machine the snapshot came from.
//
// the snapshot includes the panel latches as well as the driver registers.
// lines held over by a pending decay show a pattern that can no longer be
// derived from the current register state, so field completeness requires
// both
type State struct {
	CmpChess  *cmpchess.State
	Intellect *intellect02.State
	Panel     *display.Panel
}

// Snapshot the state of the machine
func (m *Machine) Snapshot() *State {
	st := &State{
		Panel: m.Panel.Snapshot(),
	}
	if m.CmpChess != nil {
		st.CmpChess = m.CmpChess.Snapshot()
	} else {
		st.Intellect = m.Intellect.Snapshot()
	}
	return st
}

// Plumb a previously snapshotted state into the machine. the panel is plumbed
// before the driver so that held-over digit patterns survive the driver's
// recompute
func (m *Machine) Plumb(st *State) error {
	if st == nil {
		panic("machine: cannot plumb in a nil state")
	}

	switch {
	case m.CmpChess != nil:
		if st.CmpChess == nil {
			return curated.Errorf(PlumbMismatch, "want cmpchess")
		}
		m.Panel.Plumb(st.Panel)
		m.CmpChess.Plumb(st.CmpChess)

	default:
		if st.Intellect == nil {
			return curated.Errorf(PlumbMismatch, "want intellect02")
		}
		m.Panel.Plumb(st.Panel)
		m.Intellect.Plumb(st.Intellect)
	}

	return nil
}
