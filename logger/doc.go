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

// Package logger is the central log for gopherboy. Entries are tagged, with
// the tag usually being the name of the package or sub-system that created
// the entry:
//
//	logger.Log(logger.Allow, "archivefs", "no image found in roms.zip")
//
// Consecutive duplicate entries are folded into a single entry with a repeat
// count. The number of entries kept is capped and the oldest entries are
// dropped first.
//
// The Permission argument allows a caller to gate logging on some condition
// without wrapping every call in an if statement. logger.Allow is always
// permitted.
//
// Entries can be echoed as they are created with SetEcho(). Echoed entries are
// written through a zerolog console writer.
package logger
