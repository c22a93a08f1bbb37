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
	"os"

	"github.com/jetsetilly/gopherboy/curated"
)

// File is a compressed stream over a file in the filesystem.
type File struct {
	*codecStream
	f *os.File
}

// OpenFile opens a compressed stream over the named file. See ParseMode() for
// the format of the mode string.
//
// A file opened for appending has a new compressed member added to the end of
// it. For the purposes of Seek() the position of an appending stream starts
// at zero.
func OpenFile(filename string, mode string, codec Codec) (*File, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	var flag int
	switch m.Direction {
	case Reading:
		flag = os.O_RDONLY
	case Writing:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case Appending:
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	f, err := os.OpenFile(filename, flag, 0644)
	if err != nil {
		return nil, curated.Errorf(FileOpenError, filename, err)
	}

	var cs *codecStream
	if m.Direction == Reading {
		cs, err = newReadingStream(filename, m, codec, f)
	} else {
		cs, err = newWritingStream(filename, m, codec, f)
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	cs.release = f.Close

	return &File{codecStream: cs, f: f}, nil
}

// Name returns the name of the file as given to OpenFile().
func (fs *File) Name() string {
	return fs.f.Name()
}
