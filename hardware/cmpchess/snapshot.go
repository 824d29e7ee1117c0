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

package cmpchess

import (
	"time"
)

// State is a flat snapshot of the driver. all fields are exported so a State
// can be serialised by the caller, there is no on-disk format of its own.
//
// keypad state is deliberately absent. the pressed buttons are external input
// to the machine, not part of it
type State struct {
	DigitSelect uint8
	DigitActive uint8
	DigitData   uint8
	BlinkPhase  bool

	// pending hold-off deadlines. a negative value means the line has no
	// pending expiry
	DecayRemaining [NumDigits]time.Duration

	// time to the next blink oscillator tick
	BlinkRemaining time.Duration
}

// Snapshot creates a copy of the driver's current state
func (cc *CmpChess) Snapshot() *State {
	st := &State{
		DigitSelect:    cc.digitSelect,
		DigitActive:    cc.digitActive,
		DigitData:      cc.digitData,
		BlinkPhase:     cc.blinkPhase,
		BlinkRemaining: cc.blink.Remaining(),
	}
	for i := 0; i < NumDigits; i++ {
		if d, ok := cc.decay.Pending(i); ok {
			st.DecayRemaining[i] = d
		} else {
			st.DecayRemaining[i] = -1
		}
	}
	return st
}

// Plumb a previously snapshotted state back into the driver. pending decay
// deadlines and the blink oscillator phase resume where the snapshot left
// them
func (cc *CmpChess) Plumb(st *State) {
	cc.digitSelect = st.DigitSelect
	cc.digitActive = st.DigitActive
	cc.digitData = st.DigitData
	cc.blinkPhase = st.BlinkPhase

	cc.decay.Stop()
	for i := 0; i < NumDigits; i++ {
		if st.DecayRemaining[i] >= 0 {
			cc.decay.Resume(i, st.DecayRemaining[i])
		}
	}
	cc.blink.Resync(st.BlinkRemaining)

	cc.update()
}
