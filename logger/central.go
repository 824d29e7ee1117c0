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
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log
var central *logger

// maximum number of entries in the central logger
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the output writer
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last number of entries to the output writer
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to a writer that will receive every new entry as it is made. a nil
// writer turns echoing off
func SetEcho(output io.Writer) {
	central.echo = output
}

// SetEchoFile echoes every new entry to a rotating log file at the given
// path. returns the writer so the caller can Close() it on exit
func SetEchoFile(path string) io.WriteCloser {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 3,
	}
	central.echo = w
	return w
}
