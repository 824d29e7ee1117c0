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

package intellect02

import (
	"time"
)

// State is a flat snapshot of the driver. all fields are exported so a State
// can be serialised by the caller, there is no on-disk format of its own.
//
// keypad state is deliberately absent. the pressed buttons are external input
// to the machine, not part of it
type State struct {
	LedSelect uint8
	LedActive uint8
	DigitData uint8

	// pending hold-off deadlines. a negative value means the line has no
	// pending expiry
	DecayRemaining [NumLines]time.Duration

	// time to a pending coalesced recompute. negative if none is pending
	UpdateRemaining time.Duration
}

// Snapshot creates a copy of the driver's current state
func (in *Intellect02) Snapshot() *State {
	st := &State{
		LedSelect: in.ledSelect,
		LedActive: in.ledActive,
		DigitData: in.digitData,
	}
	for i := 0; i < NumLines; i++ {
		if d, ok := in.decay.Pending(i); ok {
			st.DecayRemaining[i] = d
		} else {
			st.DecayRemaining[i] = -1
		}
	}
	if in.update.Enabled() {
		st.UpdateRemaining = in.update.Remaining()
	} else {
		st.UpdateRemaining = -1
	}
	return st
}

// Plumb a previously snapshotted state back into the driver. pending decay
// deadlines and any pending coalesced recompute resume where the snapshot
// left them
func (in *Intellect02) Plumb(st *State) {
	in.ledSelect = st.LedSelect
	in.ledActive = st.LedActive
	in.digitData = st.DigitData

	in.decay.Stop()
	for i := 0; i < NumLines; i++ {
		if st.DecayRemaining[i] >= 0 {
			in.decay.Resume(i, st.DecayRemaining[i])
		}
	}

	in.update.Stop()
	if st.UpdateRemaining >= 0 {
		in.update.Adjust(st.UpdateRemaining, 0)
	}

	in.updateNow()
}
