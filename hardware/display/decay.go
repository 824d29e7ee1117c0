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

import (
	"time"

	"github.com/jetsetilly/tabletop/hardware/clock"
)

// DecayBank is the bank of strobe decay timers, one per digit/led line. the
// display lines are strobed by the running program, so when a line is
// deselected the driver does not blank it immediately. instead it arms that
// line's decay timer and the line goes dark only if it is still deselected
// when the timer fires. re-selecting the line before expiry leaves the stale
// timer to fire as a no-op, the expiry callback must check the current select
// state (the "still deselected" guard) rather than assume anything about it.
//
// arming a line that already has a pending deadline reschedules it. there is
// never more than one pending expiry per line
type DecayBank struct {
	timers []*clock.Timer
	delay  time.Duration
}

// NewDecayBank is the preferred method of initialisation for the DecayBank
// type. the expire function is called with the line number when that line's
// hold-off period elapses
func NewDecayBank(clk *clock.Clock, numLines int, delay time.Duration, expire func(line int)) *DecayBank {
	bnk := &DecayBank{
		timers: make([]*clock.Timer, numLines),
		delay:  delay,
	}
	for i := range bnk.timers {
		bnk.timers[i] = clk.NewTimer(expire)
	}
	return bnk
}

// NumLines returns the number of lines in the bank
func (bnk *DecayBank) NumLines() int {
	return len(bnk.timers)
}

// Delay returns the hold-off period lines are armed with
func (bnk *DecayBank) Delay() time.Duration {
	return bnk.delay
}

// Arm schedules the line's expiry one hold-off period from now, superseding
// any pending expiry for that line
func (bnk *DecayBank) Arm(line int) {
	bnk.timers[line].Adjust(bnk.delay, line)
}

// Stop voids every pending expiry in the bank. used on reset, when rendered
// output is blanked with no decay
func (bnk *DecayBank) Stop() {
	for _, t := range bnk.timers {
		t.Stop()
	}
}

// Pending returns the time remaining on the line's decay timer. the second
// return value is false if the line has no pending expiry
func (bnk *DecayBank) Pending(line int) (time.Duration, bool) {
	if !bnk.timers[line].Enabled() {
		return 0, false
	}
	return bnk.timers[line].Remaining(), true
}

// Resume schedules the line's expiry at the stated delay rather than the full
// hold-off period. used when restoring a snapshot
func (bnk *DecayBank) Resume(line int, delay time.Duration) {
	bnk.timers[line].Adjust(delay, line)
}
