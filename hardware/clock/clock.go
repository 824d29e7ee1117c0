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

// Package clock implements the virtual clock that sequences every event in an
// emulated machine. CPU execution, strobe decay and display blink all happen
// as callbacks dispatched in strict deadline order from a single Clock, which
// is what gives the emulation its total ordering of events. there is no real
// concurrency anywhere in the hardware packages.
package clock

import (
	"container/heap"
	"time"
)

// Clock dispatches scheduled callbacks in virtual time. The zero value is not
// usable, use NewClock()
type Clock struct {
	now time.Duration

	// pending events ordered by deadline. seq breaks ties so that two events
	// scheduled for the same instant fire in the order they were scheduled
	queue eventQueue
	seq   uint64
}

// event is an entry in the clock's queue. events are never removed from the
// queue before their deadline, they are voided instead. a voided event is
// discarded silently when it reaches the front of the queue
type event struct {
	deadline time.Duration
	seq      uint64
	fire     func()
	void     bool

	// index into the heap. maintained by the eventQueue implementation
	idx int
}

// NewClock is the preferred method of initialisation for the Clock type
func NewClock() *Clock {
	clk := &Clock{}
	heap.Init(&clk.queue)
	return clk
}

// Now returns the current virtual time. virtual time starts at zero when the
// machine is powered on and only ever increases
func (clk *Clock) Now() time.Duration {
	return clk.now
}

// Advance moves virtual time forward by the specified amount, dispatching
// every pending event that falls due in that window. events are dispatched in
// deadline order and the clock reads the event's own deadline while its
// callback is running. callbacks are free to schedule further events; an
// event scheduled inside the window is dispatched during the same Advance()
func (clk *Clock) Advance(d time.Duration) {
	target := clk.now + d

	for len(clk.queue) > 0 && clk.queue[0].deadline <= target {
		ev := heap.Pop(&clk.queue).(*event)
		if ev.void {
			continue
		}
		clk.now = ev.deadline
		ev.fire()
	}

	clk.now = target
}

// schedule an event at a delay from the current time. a zero or negative
// delay fires on the next Advance()
func (clk *Clock) schedule(delay time.Duration, fire func()) *event {
	clk.seq++
	ev := &event{
		deadline: clk.now + delay,
		seq:      clk.seq,
		fire:     fire,
	}
	heap.Push(&clk.queue, ev)
	return ev
}

// eventQueue implements heap.Interface
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].deadline == q[j].deadline {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline < q[j].deadline
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].idx = i
	q[j].idx = j
}

func (q *eventQueue) Push(x interface{}) {
	ev := x.(*event)
	ev.idx = len(*q)
	*q = append(*q, ev)
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}
