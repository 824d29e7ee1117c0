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

	"github.com/jonboulle/clockwork"
)

// limiter paces the free-running emulation against the wall clock. virtual
// time runs far faster than real time otherwise and the display strobe would
// be unwatchable.
//
// the wall clock is injected so the limiter can be tested against a fake
// clock
type limiter struct {
	wall     clockwork.Clock
	interval time.Duration
	next     time.Time
}

func newLimiter(wall clockwork.Clock, interval time.Duration) *limiter {
	return &limiter{
		wall:     wall,
		interval: interval,
		next:     wall.Now().Add(interval),
	}
}

// Wait until the next pacing deadline. if the emulation has fallen behind the
// wall clock the deadline resynchronises rather than trying to catch up
func (l *limiter) Wait() {
	now := l.wall.Now()
	if now.Before(l.next) {
		l.wall.Sleep(l.next.Sub(now))
		l.next = l.next.Add(l.interval)
		return
	}
	l.next = now.Add(l.interval)
}
