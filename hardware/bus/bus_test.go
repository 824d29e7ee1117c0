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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/tabletop/hardware/bus"
	"github.com/jetsetilly/tabletop/test"
)

func TestPorts(t *testing.T) {
	pts := bus.NewPorts()

	var reg uint8
	pts.BindRead(0xf4, "INPUT", func() uint8 { return 0x5a })
	pts.BindWrite(0xf5, "DIGIT", func(data uint8) { reg = data })

	test.Equate(t, pts.Read8(0xf4), 0x5a)

	pts.Write8(0xf5, 0xab)
	test.Equate(t, reg, 0xab)

	test.Equate(t, pts.ReadName(0xf4), "INPUT")
	test.Equate(t, pts.WriteName(0xf5), "DIGIT")
}

func TestPortsUnmapped(t *testing.T) {
	pts := bus.NewPorts()

	// unmapped reads float high and unmapped writes are dropped without
	// disturbing anything
	test.Equate(t, pts.Read8(0x00), bus.Floating)
	pts.Write8(0x00, 0xff)
	test.Equate(t, pts.Read8(0x00), bus.Floating)
}
