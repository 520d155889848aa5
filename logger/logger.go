// This file is part of Babo.
//
// Babo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Babo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Babo.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// are used to log to the central logger.
type logger struct {
	maxEntries int
	entries    []Entry

	// if echo is not nil new entries are written to it as they arrive
	echo io.Writer
}

// maximum number of entries in the central logger.
const maxCentral = 256

var central = &logger{
	maxEntries: maxCentral,
	entries:    make([]Entry, 0, maxCentral),
}

func (l *logger) log(tag, detail string) {
	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || detail != e.detail || tag != e.tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.entries = central.entries[:0]
}

// SetEcho to print new entries to output as they arrive. A nil output turns
// echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}

// Write contents of central logger to output.
func Write(output io.Writer) {
	for i := range central.entries {
		io.WriteString(output, central.entries[i].String())
	}
}

// Tail writes the last number of entries to output. A negative number writes
// every entry.
func Tail(output io.Writer, number int) {
	if number < 0 || number > len(central.entries) {
		number = len(central.entries)
	}
	for i := len(central.entries) - number; i < len(central.entries); i++ {
		io.WriteString(output, central.entries[i].String())
	}
}
