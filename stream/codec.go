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
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies the compression used by a stream.
type Codec int

// List of valid Codec values.
const (
	// Auto is only meaningful for streams opened for reading. The codec is
	// detected from the first bytes of the data. Streams opened for writing
	// with Auto use Gzip.
	Auto Codec = iota
	Gzip
	LZ4
	Zstd
	None
)

func (c Codec) String() string {
	switch c {
	case Auto:
		return "auto"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	case None:
		return "none"
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// ParseCodec parses a codec from its string representation.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "auto", "":
		return Auto, nil
	case "gzip", "gz":
		return Gzip, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	case "none":
		return None, nil
	}
	return Auto, curated.Errorf(UnknownCodec, name)
}

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Sniff returns the codec suggested by the first bytes of some data. Data
// that is not recognised is assumed to be uncompressed.
func Sniff(header []byte) Codec {
	switch {
	case bytes.HasPrefix(header, magicGzip):
		return Gzip
	case bytes.HasPrefix(header, magicLZ4):
		return LZ4
	case bytes.HasPrefix(header, magicZstd):
		return Zstd
	}
	return None
}

// sniffSource peeks at the start of a seekable source and leaves it
// positioned at the start.
func sniffSource(src io.ReadSeeker) (Codec, error) {
	header := make([]byte, 4)
	n, err := io.ReadFull(src, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return None, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return None, err
	}
	return Sniff(header[:n]), nil
}

// encoder is the common interface of the compressing writers
type encoder interface {
	io.WriteCloser
	Flush() error
}

type plainEncoder struct {
	w io.Writer
}

func (e plainEncoder) Write(p []byte) (int, error) {
	return e.w.Write(p)
}

func (e plainEncoder) Flush() error {
	return nil
}

func (e plainEncoder) Close() error {
	return nil
}

// lz4 levels indexed by the single digit level of the mode string
var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

func (c Codec) newEncoder(w io.Writer, level int) (encoder, error) {
	switch c {
	case Auto, Gzip:
		if level < 0 {
			level = gzip.DefaultCompression
		}
		return gzip.NewWriterLevel(w, level)

	case LZ4:
		enc := lz4.NewWriter(w)
		if level >= 0 {
			if err := enc.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
				return nil, err
			}
		}
		return enc, nil

	case Zstd:
		opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
		if level >= 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		return zstd.NewWriter(w, opts...)

	case None:
		return plainEncoder{w: w}, nil
	}

	return nil, fmt.Errorf("unsupported codec: %v", c)
}

func (c Codec) newDecoder(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)

	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil

	case Zstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil

	case None:
		return io.NopCloser(r), nil
	}

	return nil, fmt.Errorf("unsupported codec: %v", c)
}
