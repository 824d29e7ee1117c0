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

// Package modalflag is a wrapper around the flag package in the Go standard
// library. It provides command line modes (RUN, DEMO, etc.) each with its own
// flag set, parsed in layers:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEMO")
//
//	r, err := md.Parse()
//	...
//	switch md.Mode() {
//	...
//	}
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes provides an easy way of handling command line arguments in layers.
// The Output field should be specified before calling Parse() or you will not
// see any help messages.
type Modes struct {
	// where to print output (help messages etc)
	Output io.Writer

	// the underlying flag set. a new one is created on every call to
	// NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as given to NewArgs()
	args    []string
	argsIdx int

	// the sub-modes valid for the next Parse(). the first entry is the
	// default
	subModes []string

	// the series of sub-modes found by successive calls to Parse()
	path []string
}

// ParseResult is returned from the Parse() function
type ParseResult int

// List of valid ParseResult values
const (
	// continue with command line processing. if sub-modes were specified then
	// Mode() says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error occurred and is returned as the second return value
	ParseError
)

// Mode returns the last mode to be encountered
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs initialises the Modes struct with a fresh argument list
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes to the list of sub-modes for the next Parse(). The first
// sub-mode in the list is the default. Sub-mode comparison is case
// insensitive
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Parse the current layer of arguments
func (md *Modes) Parse() (ParseResult, error) {
	if md.Output == nil {
		md.Output = io.Discard
	}
	md.flags.SetOutput(md.Output)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			if len(md.subModes) > 0 {
				fmt.Fprintf(md.Output, "Sub-modes: %s (default %s)\n",
					strings.Join(md.subModes, ", "), md.subModes[0])
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// assume the default sub-mode until the argument proves otherwise
		mode := md.subModes[0]
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that aren't flags or a listed sub-mode
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse()
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse()
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse()
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}
