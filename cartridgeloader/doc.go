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

// Package cartridgeloader is used to load the cartridge image that is to be
// emulated.
//
// The image can be a plain file or a member of an archive. Archives are
// searched with the archivefs package and the first member accepted by the
// Loader's Accept function is loaded. The simplest use of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/collection.zip")
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//
// After a successful Load() the Data field holds the image. The length of Data
// is always a power of two and may be larger than the image. The Size field is
// the number of bytes of the image actually read.
//
// The LoadInto() function loads the image into a buffer supplied by the
// caller, reading no more than requested.
//
// Failures to find or read the image are reported to the Loader's Notify
// implementation before an error is returned.
package cartridgeloader
