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

// Package checkpoint reads and writes emulator state as an ordered sequence of
// memory regions. Each region is described by a Variable, which refers to
// memory owned by the emulator:
//
//	vars := []checkpoint.Variable{
//		{Name: "registers", Data: cpu.registers[:]},
//		{Name: "iwram", Data: mem.iwram},
//	}
//
//	err := checkpoint.WriteData(s, vars)
//
// The format is the plain concatenation of the regions. There are no length
// or type tags and no checksum, so the same sequence of variables must be used
// for reading as was used for writing. Versioning of the format, if required,
// is the responsibility of the caller.
//
// A Variable with nil Data marks the end of a sequence. Iteration stops at
// the first such sentinel or at the end of the slice, whichever comes first.
// This allows a fixed table of variables to be shortened without reslicing.
package checkpoint
