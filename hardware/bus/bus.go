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

// Package bus decodes the CPU's port space into the named peripheral
// registers of a driver. the drivers expose their registers as read/write
// handlers and the machine binds them to whatever addresses the real hardware
// decodes, so the handlers themselves carry no address knowledge.
package bus

import (
	"github.com/jetsetilly/tabletop/logger"
)

// ReadHandler is a named register read. register reads are total functions so
// there is no error return
type ReadHandler func() uint8

// WriteHandler is a named register write. any byte value is valid
type WriteHandler func(data uint8)

// Floating is the value returned by a read of an unmapped port. the data bus
// lines float high
const Floating = 0xff

// Ports maps an 8-bit port space onto register handlers
type Ports struct {
	read      map[uint8]ReadHandler
	readName  map[uint8]string
	write     map[uint8]WriteHandler
	writeName map[uint8]string

	// unmapped accesses are logged on first occurrence only
	logged map[uint16]bool
}

// NewPorts is the preferred method of initialisation for the Ports type
func NewPorts() *Ports {
	return &Ports{
		read:      make(map[uint8]ReadHandler),
		readName:  make(map[uint8]string),
		write:     make(map[uint8]WriteHandler),
		writeName: make(map[uint8]string),
		logged:    make(map[uint16]bool),
	}
}

// BindRead attaches a named read handler to a port address
func (pts *Ports) BindRead(addr uint8, name string, h ReadHandler) {
	pts.read[addr] = h
	pts.readName[addr] = name
}

// BindWrite attaches a named write handler to a port address
func (pts *Ports) BindWrite(addr uint8, name string, h WriteHandler) {
	pts.write[addr] = h
	pts.writeName[addr] = name
}

// Read8 reads the register bound to the port address. unmapped ports read as
// Floating
func (pts *Ports) Read8(addr uint8) uint8 {
	if h, ok := pts.read[addr]; ok {
		return h()
	}
	pts.logUnmapped(addr, false)
	return Floating
}

// Write8 writes to the register bound to the port address. writes to unmapped
// ports are dropped
func (pts *Ports) Write8(addr uint8, data uint8) {
	if h, ok := pts.write[addr]; ok {
		h(data)
		return
	}
	pts.logUnmapped(addr, true)
}

// ReadName returns the name of the read handler bound to a port address
func (pts *Ports) ReadName(addr uint8) string {
	return pts.readName[addr]
}

// WriteName returns the name of the write handler bound to a port address
func (pts *Ports) WriteName(addr uint8) string {
	return pts.writeName[addr]
}

func (pts *Ports) logUnmapped(addr uint8, write bool) {
	k := uint16(addr)
	if write {
		k |= 0x100
	}
	if pts.logged[k] {
		return
	}
	pts.logged[k] = true

	if write {
		logger.Logf("ports", "write to unmapped port %#02x", addr)
	} else {
		logger.Logf("ports", "read from unmapped port %#02x", addr)
	}
}
