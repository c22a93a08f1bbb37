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

// Package prefs facilitates the storage of preferential values in the
// Gopherboy system. It is a key/value store with values being typed.
//
// The Bool, Int and String types can be set with a value of the same Go type
// or with a string, which is useful when the value comes from a file or from
// the command line.
//
// Values are bound to a key with Disk.Add() and the Disk type saves and
// loads the bound values to and from a TOML file:
//
//	dsk, err := prefs.NewDisk(pth)
//	var codec prefs.String
//	err = dsk.Add("checkpoint.codec", &codec)
//	err = dsk.Load()
//
// Keys are written to the file as quoted dotted keys. A file edited by hand
// may use TOML tables instead. The following are equivalent:
//
//	'checkpoint.codec' = 'zstd'
//
//	[checkpoint]
//	codec = 'zstd'
//
// Values in the file for keys that have not been added to the Disk are kept
// when the file is saved, unless the key is in the list of defunct keys.
//
// The command line stack allows values to be overridden for the duration of a
// Load(). See PushCommandLineStack() for the format of the prefs string.
package prefs
