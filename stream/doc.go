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

// Package stream provides compressed streams for emulator checkpoints. A
// stream is opened over either a file (OpenFile) or a caller supplied byte
// slice (OpenMemory) and both kinds present the same Stream interface:
//
//	s, err := stream.OpenFile("game.sgm", "wb", stream.Gzip)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
// The backend is chosen when the stream is opened and stays with the stream
// for its lifetime. There is no shared state between streams so a file stream
// and a memory stream can be used at the same time.
//
// Offsets given to and returned by Seek() are positions in the uncompressed
// data. Seeking a stream opened for reading is done by decompressing and
// discarding data, rewinding to the start of the compressed data if necessary.
// Streams opened for writing can only seek forwards, the gap being filled with
// zero bytes.
//
// Gzip is the default codec and the format used by checkpoints of the
// original emulator. LZ4 and Zstd are available as alternatives and None
// writes the data uncompressed. Streams opened for reading with the Auto codec
// detect the codec from the first bytes of the data.
package stream
