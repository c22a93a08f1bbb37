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
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/jetsetilly/gopherboy/stream"
)

// Options for the Save and Load functions.
type Options struct {
	// codec to use when saving. Load always detects the codec
	Codec stream.Codec

	// lenient reading, see ReadDataLenient()
	Lenient bool

	// where to send user facing failures. if nil notifications.Default is
	// used
	Notify notifications.Notify
}

func (o Options) read(s stream.Stream, vars []Variable) error {
	if o.Lenient {
		return ReadDataLenient(s, vars)
	}
	return ReadData(s, vars)
}

// Save writes the variables to a new checkpoint file.
func Save(filename string, vars []Variable, opts Options) (rerr error) {
	s, err := stream.OpenFile(filename, "wb", opts.Codec)
	if err != nil {
		notifications.Send(opts.Notify, notifications.NotifyCreatingFile, filename)
		return err
	}
	defer func() {
		if err := s.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	return WriteData(s, vars)
}

// Load reads the variables from a checkpoint file.
func Load(filename string, vars []Variable, opts Options) error {
	s, err := stream.OpenFile(filename, "rb", stream.Auto)
	if err != nil {
		notifications.Send(opts.Notify, notifications.NotifyCannotOpenFile, filename)
		return err
	}
	defer s.Close()

	return opts.read(s, vars)
}

// SaveMemory writes the variables to memory, compressed with the codec in
// Options. Returns the number of bytes of memory used. An error is returned if
// the memory is not large enough.
func SaveMemory(memory []byte, vars []Variable, opts Options) (int, error) {
	s, err := stream.OpenMemory(memory, len(memory), "wb", opts.Codec)
	if err != nil {
		return 0, err
	}

	err = WriteData(s, vars)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, curated.Errorf("checkpoint: %v", err)
	}

	n, err := s.Tell()
	return int(n), err
}

// LoadMemory reads the variables from the first size bytes of memory, as
// written by SaveMemory().
func LoadMemory(memory []byte, size int, vars []Variable, opts Options) error {
	s, err := stream.OpenMemory(memory, size, "rb", stream.Auto)
	if err != nil {
		return err
	}
	defer s.Close()

	return opts.read(s, vars)
}
