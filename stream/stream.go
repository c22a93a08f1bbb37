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
	"errors"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
)

// Stream is the interface shared by every stream regardless of backend.
//
// Read() behaves like io.ReadFull() except that a short read at the end of the
// stream is reported with io.EOF rather than io.ErrUnexpectedEOF. The number of
// bytes returned is always the number of bytes actually read.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// codecStream implements the Stream interface over a compressed source (when
// reading) or sink (when writing). The backends supply the source or sink and
// a function to release their own resources.
type codecStream struct {
	name  string
	mode  Mode
	codec Codec

	// reading
	src io.ReadSeeker
	dec io.ReadCloser

	// writing
	enc encoder

	// position in the uncompressed data
	offset int64

	// release backend resources. called once by Close()
	release func() error

	closed bool
}

func newReadingStream(name string, mode Mode, codec Codec, src io.ReadSeeker) (*codecStream, error) {
	if codec == Auto {
		var err error
		codec, err = sniffSource(src)
		if err != nil {
			return nil, curated.Errorf(CodecError, name, err)
		}
	}

	dec, err := codec.newDecoder(src)
	if err != nil {
		return nil, curated.Errorf(CodecError, name, err)
	}

	return &codecStream{
		name:  name,
		mode:  mode,
		codec: codec,
		src:   src,
		dec:   dec,
	}, nil
}

func newWritingStream(name string, mode Mode, codec Codec, dst io.Writer) (*codecStream, error) {
	if codec == Auto {
		codec = Gzip
	}

	enc, err := codec.newEncoder(dst, mode.Level)
	if err != nil {
		return nil, curated.Errorf(CodecError, name, err)
	}

	return &codecStream{
		name:  name,
		mode:  mode,
		codec: codec,
		enc:   enc,
	}, nil
}

// Codec returns the codec in use by the stream. For streams opened for
// reading with the Auto codec this is the detected codec.
func (s *codecStream) Codec() Codec {
	return s.codec
}

// Write implements the io.Writer interface.
func (s *codecStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, curated.Errorf(StreamClosedError, s.name)
	}
	if s.enc == nil {
		return 0, curated.Errorf(InvalidMode, s.mode.Direction)
	}

	n, err := s.enc.Write(p)
	s.offset += int64(n)
	if err != nil {
		return n, curated.Errorf(CodecError, s.name, err)
	}
	return n, nil
}

// Read implements the io.Reader interface.
func (s *codecStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, curated.Errorf(StreamClosedError, s.name)
	}
	if s.dec == nil {
		return 0, curated.Errorf(InvalidMode, s.mode.Direction)
	}

	n, err := io.ReadFull(s.dec, p)
	s.offset += int64(n)

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
		return n, io.EOF
	}

	return n, curated.Errorf(CodecError, s.name, err)
}

// Seek implements the io.Seeker interface. Offsets are in the uncompressed
// data.
func (s *codecStream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, curated.Errorf(StreamClosedError, s.name)
	}

	if s.enc != nil {
		return s.seekWriting(offset, whence)
	}
	return s.seekReading(offset, whence)
}

func (s *codecStream) seekWriting(offset int64, whence int) (int64, error) {
	var target int64

	// the end of a stream being written is always the current position
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent, io.SeekEnd:
		target = s.offset + offset
	default:
		return s.offset, curated.Errorf(InvalidSeek, offset, "unknown whence value")
	}

	if target < s.offset {
		return s.offset, curated.Errorf(InvalidSeek, target, "cannot seek backwards when writing")
	}

	// zero fill the gap
	if _, err := io.CopyN(s, zeroReader{}, target-s.offset); err != nil {
		return s.offset, err
	}

	return s.offset, nil
}

func (s *codecStream) seekReading(offset int64, whence int) (int64, error) {
	var target int64

	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.offset + offset
	case io.SeekEnd:
		// the length of the uncompressed data is only known by reaching the
		// end of it
		n, err := io.Copy(io.Discard, s.dec)
		s.offset += n
		if err != nil {
			return s.offset, curated.Errorf(CodecError, s.name, err)
		}
		target = s.offset + offset
	default:
		return s.offset, curated.Errorf(InvalidSeek, offset, "unknown whence value")
	}

	if target < 0 {
		return s.offset, curated.Errorf(InvalidSeek, target, "negative position")
	}

	if target < s.offset {
		if err := s.rewind(); err != nil {
			return s.offset, err
		}
	}

	n, err := io.CopyN(io.Discard, s.dec, target-s.offset)
	s.offset += n
	if err != nil {
		if errors.Is(err, io.EOF) {
			return s.offset, curated.Errorf(InvalidSeek, target, "beyond end of stream")
		}
		return s.offset, curated.Errorf(CodecError, s.name, err)
	}

	return s.offset, nil
}

// rewind restarts decompression from the beginning of the source.
func (s *codecStream) rewind() error {
	if _, err := s.src.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf(CodecError, s.name, err)
	}

	_ = s.dec.Close()

	dec, err := s.codec.newDecoder(s.src)
	if err != nil {
		return curated.Errorf(CodecError, s.name, err)
	}

	s.dec = dec
	s.offset = 0
	return nil
}

// Close implements the io.Closer interface. Close() must be called exactly
// once. Any subsequent call returns an error.
func (s *codecStream) Close() error {
	if s.closed {
		return curated.Errorf(StreamClosedError, s.name)
	}
	s.closed = true

	var err error
	if s.enc != nil {
		err = s.enc.Close()
	}
	if s.dec != nil {
		_ = s.dec.Close()
	}

	if s.release != nil {
		if rerr := s.release(); err == nil {
			err = rerr
		}
	}

	if err != nil {
		return curated.Errorf(CodecError, s.name, err)
	}
	return nil
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
