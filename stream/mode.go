// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package stream

import (
	"github.com/jetsetilly/gopherboy/curated"
)

// Direction of the stream. Decided when the stream is opened.
type Direction int

// List of valid Direction values.
const (
	Reading Direction = iota
	Writing
	Appending
)

func (d Direction) String() string {
	switch d {
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	case Appending:
		return "appending"
	}
	return "unknown"
}

// Mode is the parsed form of a mode string.
type Mode struct {
	Direction Direction

	// compression level. -1 means the codec's default level
	Level int
}

// ParseMode parses the mode string used by OpenFile() and OpenMemory(). The
// string must contain one of 'r', 'w' or 'a'. A single digit sets the
// compression level and 'b' is accepted and ignored. For example "wb9" is
// writing with compression level nine.
func ParseMode(mode string) (Mode, error) {
	m := Mode{Level: -1}
	dir := false

	for _, c := range mode {
		switch {
		case c == 'r' || c == 'w' || c == 'a':
			if dir {
				return Mode{}, curated.Errorf(InvalidMode, mode)
			}
			dir = true
			switch c {
			case 'r':
				m.Direction = Reading
			case 'w':
				m.Direction = Writing
			case 'a':
				m.Direction = Appending
			}
		case c >= '0' && c <= '9':
			m.Level = int(c - '0')
		case c == 'b':
		default:
			return Mode{}, curated.Errorf(InvalidMode, mode)
		}
	}

	if !dir {
		return Mode{}, curated.Errorf(InvalidMode, mode)
	}

	return m, nil
}
