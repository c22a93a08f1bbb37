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

package checkpoint

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal patterns for errors raised by the checkpoint package.
const (
	WriteError    = "checkpoint: writing %s: %v"
	ReadError     = "checkpoint: reading %s: %v"
	SkipError     = "checkpoint: skipping %s: %v"
	ReadTruncated = "checkpoint: %s truncated (%d of %d bytes)"
)

// Variable refers to a region of memory that takes part in a checkpoint. The
// memory is not owned by the Variable.
type Variable struct {
	Name string
	Data []byte
}

// IsSentinel returns true if the Variable marks the end of a sequence.
func (v Variable) IsSentinel() bool {
	return v.Data == nil
}

func (v Variable) label() string {
	if v.Name == "" {
		return "unnamed variable"
	}
	return v.Name
}

// each calls f for every Variable in the sequence up to the sentinel.
func each(vars []Variable, f func(v Variable) error) error {
	for _, v := range vars {
		if v.IsSentinel() {
			return nil
		}
		if err := f(v); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of bytes the sequence occupies in a checkpoint.
func Size(vars []Variable) int {
	var n int
	_ = each(vars, func(v Variable) error {
		n += len(v.Data)
		return nil
	})
	return n
}

// WriteData writes every variable in order. The write is not atomic. A failure
// part way through the sequence leaves a truncated checkpoint which should be
// discarded.
func WriteData(w io.Writer, vars []Variable) error {
	return each(vars, func(v Variable) error {
		_, err := w.Write(v.Data)
		if err != nil {
			return curated.Errorf(WriteError, v.label(), err)
		}
		return nil
	})
}

// ReadData reads every variable in order into the memory it refers to. A
// variable that cannot be filled completely results in a ReadTruncated error
// and no further variables are read.
func ReadData(r io.Reader, vars []Variable) error {
	return each(vars, func(v Variable) error {
		n, err := io.ReadFull(r, v.Data)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return curated.Errorf(ReadTruncated, v.label(), n, len(v.Data))
			}
			return curated.Errorf(ReadError, v.label(), err)
		}
		return nil
	})
}

// ReadDataLenient is like ReadData except that a variable that cannot be
// filled completely is not an error. Memory not reached by the data is left
// unchanged. This matches how checkpoints were read by older emulators and
// may be required to load checkpoints created by them.
func ReadDataLenient(r io.Reader, vars []Variable) error {
	return each(vars, func(v Variable) error {
		_, err := io.ReadFull(r, v.Data)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return curated.Errorf(ReadError, v.label(), err)
		}
		return nil
	})
}

// SkipData moves forward past every variable in the sequence without reading
// into the memory the variables refer to. Used to ignore a section of a
// checkpoint.
func SkipData(s io.Seeker, vars []Variable) error {
	return each(vars, func(v Variable) error {
		_, err := s.Seek(int64(len(v.Data)), io.SeekCurrent)
		if err != nil {
			return curated.Errorf(SkipError, v.label(), err)
		}
		return nil
	})
}

// WriteInt writes a single 32 bit value in little-endian order.
func WriteInt(w io.Writer, i int32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(i))
	return WriteData(w, []Variable{{Name: "int", Data: b[:]}})
}

// ReadInt reads a single 32 bit value written by WriteInt().
func ReadInt(r io.Reader) (int32, error) {
	var b [4]byte
	err := ReadData(r, []Variable{{Name: "int", Data: b[:]}})
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}
