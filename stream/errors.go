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

// Sentinal patterns for errors raised by the stream package.
const (
	FileOpenError     = "stream: cannot open %s: %v"
	StreamClosedError = "stream: %s is closed"
	MemoryExhausted   = "stream: memory exhausted (%d bytes available)"
	InvalidMode       = "stream: invalid mode (%s)"
	InvalidSeek       = "stream: cannot seek to %d: %s"
	CodecError        = "stream: %s: %v"
	UnknownCodec      = "stream: unknown codec (%s)"
)
