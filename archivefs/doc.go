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

// Package archivefs finds cartridge images inside archive files. Zip, tar and
// gzipped tar archives are supported, as is a single gzipped file, which is
// treated as an archive of one member.
//
// The Locate() function opens an archive and tries each member in the order
// they are stored in the archive. The name of each member is given to an
// Acceptor function and the first member to be accepted is the result:
//
//	entry, err := archivefs.Locate("roms.zip", func(name string) bool {
//		return strings.HasSuffix(name, ".gba")
//	})
//
// The name given to the Acceptor is the candidate name. It is the member name
// truncated to NameCapacity bytes and with any compression extension (.gz or
// .z) removed. The member itself is always opened by its real name.
//
// When the contents of the accepted member are required, use OpenScanner()
// and the Scanner type directly. The Scanner must be closed when it is no
// longer needed.
//
// The size of a gzipped file is found by decompressing it, because the size
// recorded in the gzip trailer is only correct for small, single member
// files. Set Scanner.SizeLimit to stop measuring once the size is known to be
// too large.
package archivefs
