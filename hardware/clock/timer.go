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

package clock

import (
	"fmt"
	"time"
)

// Timer is a one-shot timer with a single pending instance. adjusting a timer
// that has not yet fired reschedules it, it never accumulates a second
// pending callback. the param given to Adjust() is carried to the callback,
// the drivers use it for the digit/led line index
type Timer struct {
	clk   *Clock
	fn    func(param int)
	param int
	ev    *event
}

// NewTimer creates a stopped one-shot timer attached to the clock
func (clk *Clock) NewTimer(fn func(param int)) *Timer {
	return &Timer{
		clk: clk,
		fn:  fn,
	}
}

func (t *Timer) String() string {
	if !t.Enabled() {
		return "timer: stopped"
	}
	return fmt.Sprintf("timer: fires in %v (param %d)", t.Remaining(), t.param)
}

// Adjust schedules the timer to fire after the delay, superseding any pending
// deadline
func (t *Timer) Adjust(delay time.Duration, param int) {
	if t.ev != nil {
		t.ev.void = true
	}
	t.param = param
	t.ev = t.clk.schedule(delay, t.expire)
}

func (t *Timer) expire() {
	t.ev = nil
	t.fn(t.param)
}

// Stop voids any pending deadline. stopping a stopped timer is a no-op
func (t *Timer) Stop() {
	if t.ev != nil {
		t.ev.void = true
		t.ev = nil
	}
}

// Enabled returns true if the timer has a pending deadline
func (t *Timer) Enabled() bool {
	return t.ev != nil
}

// Remaining returns the time left until the pending deadline. zero if the
// timer is not enabled. used when snapshotting timer state
func (t *Timer) Remaining() time.Duration {
	if t.ev == nil {
		return 0
	}
	return t.ev.deadline - t.clk.now
}

// Param returns the param the timer was most recently adjusted with
func (t *Timer) Param() int {
	return t.param
}

// Ticker fires a callback at a fixed period, forever. the blink oscillator in
// the cmpchess driver is the only user but the type is general
type Ticker struct {
	clk    *Clock
	period time.Duration
	fn     func()
	ev     *event
}

// NewTicker creates and starts a periodic ticker. the first callback fires
// one full period from now
func (clk *Clock) NewTicker(period time.Duration, fn func()) *Ticker {
	tck := &Ticker{
		clk:    clk,
		period: period,
		fn:     fn,
	}
	tck.ev = clk.schedule(period, tck.tick)
	return tck
}

func (tck *Ticker) tick() {
	tck.ev = tck.clk.schedule(tck.period, tck.tick)
	tck.fn()
}

// Remaining returns the time left until the next tick
func (tck *Ticker) Remaining() time.Duration {
	return tck.ev.deadline - tck.clk.now
}

// Resync discards the pending tick and schedules the next one at the stated
// delay. later ticks continue at the normal period. used when restoring a
// snapshot so that the blink phase picks up where it left off
func (tck *Ticker) Resync(delay time.Duration) {
	tck.ev.void = true
	tck.ev = tck.clk.schedule(delay, tck.tick)
}
