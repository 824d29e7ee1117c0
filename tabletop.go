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

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/tabletop/curated"
	"github.com/jetsetilly/tabletop/hardware"
	"github.com/jetsetilly/tabletop/logger"
	"github.com/jetsetilly/tabletop/modalflag"
	"github.com/jetsetilly/tabletop/panel"
	"github.com/jetsetilly/tabletop/statsview"
	"github.com/jetsetilly/tabletop/version"
)

// sentinel errors for the command line
const UnknownMachine = "unknown machine: %s"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEMO", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md, false)
	case "DEMO":
		err = emulate(md, true)
	case "DUMP":
		err = dump(md)
	case "VERSION":
		vrsn, rev, release := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, vrsn)
		if !release {
			fmt.Printf("  revision: %s\n", rev)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// newMachine creates the machine named on the command line
func newMachine(name string) (*hardware.Machine, error) {
	switch name {
	case "cmpchess":
		return hardware.NewCmpChess(), nil
	case "mk1":
		return hardware.NewMK1(), nil
	case "intellect02":
		return hardware.NewIntellect02(), nil
	}
	return nil, curated.Errorf(UnknownMachine, name)
}

func emulate(md *modalflag.Modes, demo bool) error {
	md.NewMode()

	machine := md.AddString("machine", "cmpchess", "one of cmpchess, mk1, intellect02")
	logfile := md.AddString("log", "", "echo the log to a rotating file")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *logfile != "" {
		w := logger.SetEchoFile(*logfile)
		defer w.Close()
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	m, err := newMachine(*machine)
	if err != nil {
		return err
	}

	if demo {
		m.AttachCPU(newDemo(m))
	}

	logger.Logf("tabletop", "%s powered on", *machine)

	pnl, err := panel.NewPanel(m)
	if err != nil {
		return err
	}

	return pnl.Run()
}

// dump writes a graph of a snapshotted machine in graphviz dot format. useful
// when eyeballing save-state contents
func dump(md *modalflag.Modes) error {
	md.NewMode()

	machine := md.AddString("machine", "cmpchess", "one of cmpchess, mk1, intellect02")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	m, err := newMachine(*machine)
	if err != nil {
		return err
	}

	// a short demo run gives the snapshot something to show
	m.AttachCPU(newDemo(m))
	for i := 0; i < 1000; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}

	memviz.Map(os.Stdout, m.Snapshot())
	return nil
}
