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

package logger

import (
	"testing"

	"github.com/jetsetilly/tabletop/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(16)

	tw := &test.CompareWriter{}
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	l.log("test", "this is a test")
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	l.logf("test", "this is test %03d", 2)
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest: this is test 002\n"))

	tw.Clear()
	l.clear()
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))
}

func TestRepeatFolding(t *testing.T) {
	l := newLogger(16)

	l.log("ports", "read from unmapped port 0x02")
	l.log("ports", "read from unmapped port 0x02")
	l.log("ports", "read from unmapped port 0x02")

	tw := &test.CompareWriter{}
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("ports: read from unmapped port 0x02 (repeat x3)\n"))
}

func TestTail(t *testing.T) {
	l := newLogger(16)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	tw := &test.CompareWriter{}
	l.tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: two\ntest: three\n"))

	// asking for more entries than exist is not an error
	tw.Clear()
	l.tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: one\ntest: two\ntest: three\n"))
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	tw := &test.CompareWriter{}
	l.write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: two\ntest: three\n"))
}

func TestEcho(t *testing.T) {
	l := newLogger(16)

	tw := &test.CompareWriter{}
	l.echo = tw

	l.log("test", "echoed")
	test.ExpectedSuccess(t, tw.Compare("test: echoed\n"))
}
