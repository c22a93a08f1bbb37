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
	"io"

	"github.com/jetsetilly/gopherboy/curated"
)

// bounded writes into a fixed area of memory. It never grows.
type bounded struct {
	memory    []byte
	available int
	n         int
}

func (b *bounded) Write(p []byte) (int, error) {
	space := b.available - b.n
	if len(p) > space {
		c := copy(b.memory[b.n:b.available], p)
		b.n += c
		return c, curated.Errorf(MemoryExhausted, b.available)
	}
	c := copy(b.memory[b.n:], p)
	b.n += c
	return c, nil
}

// Memory is a compressed stream over an area of memory supplied by the
// caller.
type Memory struct {
	*codecStream

	// for reading
	reader *bytes.Reader

	// for writing
	writer *bounded
}

// OpenMemory opens a compressed stream over the memory slice. When reading,
// the compressed data is the first available bytes of memory. When writing,
// compressed data is written to memory and writing more than available bytes
// is an error. The available value is capped to the length of memory.
//
// Appending to memory is the same as writing to it.
func OpenMemory(memory []byte, available int, mode string, codec Codec) (*Memory, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	if available > len(memory) || available < 0 {
		available = len(memory)
	}

	if m.Direction == Reading {
		r := bytes.NewReader(memory[:available])
		cs, err := newReadingStream("memory", m, codec, r)
		if err != nil {
			return nil, err
		}
		return &Memory{codecStream: cs, reader: r}, nil
	}

	w := &bounded{memory: memory, available: available}
	cs, err := newWritingStream("memory", m, codec, w)
	if err != nil {
		return nil, err
	}
	return &Memory{codecStream: cs, writer: w}, nil
}

// Tell returns the number of compressed bytes that have been consumed from or
// produced into memory. When writing, any data held by the compressor is
// flushed first so the value is the true size of the compressed data so far.
func (ms *Memory) Tell() (int64, error) {
	if ms.closed {
		if ms.writer != nil {
			return int64(ms.writer.n), nil
		}
		return 0, curated.Errorf(StreamClosedError, ms.name)
	}

	if ms.writer != nil {
		if err := ms.enc.Flush(); err != nil {
			return int64(ms.writer.n), curated.Errorf(CodecError, ms.name, err)
		}
		return int64(ms.writer.n), nil
	}

	pos, err := ms.reader.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, curated.Errorf(CodecError, ms.name, err)
	}
	return pos, nil
}

// Bytes returns the compressed data written to memory so far. It is only
// meaningful for streams opened for writing and is complete only after
// Close().
func (ms *Memory) Bytes() []byte {
	if ms.writer == nil {
		return nil
	}
	return ms.writer.memory[:ms.writer.n]
}
