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

// how often the run loop yields to the continueCheck function and the pacing
// limiter. a display strobed at the decay timescale needs nothing finer
const runQuantum = 5 * time.Millisecond

// Run the machine at wall-clock speed until continueCheck returns false.
// continueCheck is called between timeslices, which is also when the caller
// should apply any pending input. there is no locking anywhere in the
// hardware packages so all mutation must happen through this single loop
func (m *Machine) Run(continueCheck func() (bool, error)) error {
	return m.run(clockwork.NewRealClock(), continueCheck)
}

func (m *Machine) run(wall clockwork.Clock, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	lim := newLimiter(wall, runQuantum)

	cont := true
	for cont {
		start := m.Clock.Now()
		for m.Clock.Now()-start < runQuantum {
			if err := m.Step(); err != nil {
				return err
			}
		}

		lim.Wait()

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
