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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is the identity of the error and packages that
// raise curated errors export their patterns as const strings. For example:
//
//	const CannotOpen = "archive: cannot open %s: %v"
//
//	e := curated.Errorf(CannotOpen, "roms.zip", err)
//	if curated.Is(e, CannotOpen) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("loader: %v", e)
//	if curated.Has(f, CannotOpen) {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': ' as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
//
//	loader: loader: no image found
//
// is normalised to:
//
//	loader: no image found
//
// Curated errors support Unwrap() so that the errors package can see through
// them to any plain error used as a placeholder value. This means
// errors.Is(err, io.EOF) works as expected even when io.EOF has been curated.
package curated
