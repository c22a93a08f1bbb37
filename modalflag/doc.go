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

// Package modalflag is a wrapper for the pflag package. It provides a
// convenient method of handling program modes (and sub-modes) and allows
// different flags for each mode.
//
// Whereas, with pflag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Flags are added with the Add functions, which return a pointer to the
// variable that will be set by Parse():
//
//	codec := md.AddString("codec", "gzip", "compression codec")
//
// Flags are written in the long form on the command line, with two dashes.
// Unlike the pflag package, flags are not accepted after the first non-flag
// argument. That argument may be a mode.
//
// A mode is a special command line argument that when specified, puts the
// program into a different mode of operation. Each mode can have a different
// set of flags and expected arguments. Modes are added with AddSubModes(),
// the first mode being the default. Comparisons are case insensitive.
//
//	md.AddSubModes("info", "locate", "convert")
//	md.Parse()
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		strict := md.AddBool("strict", true, "strict checkpoint reading")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be chained to any depth. The Path() function returns the modes
// that have been encountered so far.
package modalflag
