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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types. Archives are recognised by their content and not by their extension.
// The list is for the benefit of file choosers.
var ArchiveExtensions = [...]string{".ZIP", ".TAR", ".TGZ", ".GZ", ".Z"}

// CompressionExtensions are the extensions of a single compressed file. An
// archive member with one of these extensions is judged by the name without
// the extension.
var CompressionExtensions = [...]string{".GZ", ".Z"}

// IsCompressed returns true if the filename ends with one of the
// CompressionExtensions. The comparison is case insensitive and the filename
// must have something before the extension.
func IsCompressed(filename string) bool {
	ext := filepath.Ext(filename)
	if len(ext) == len(filename) {
		return false
	}
	ext = strings.ToUpper(ext)
	for _, e := range CompressionExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// StripCompressionExt removes compression extensions from the end of the
// filename. Every trailing compression extension is removed so that the
// function is idempotent:
//
//	StripCompressionExt("rom.gba.gz") == "rom.gba"
//	StripCompressionExt("rom.gba.gz.z") == "rom.gba"
//	StripCompressionExt("rom.gba") == "rom.gba"
func StripCompressionExt(filename string) string {
	for IsCompressed(filename) {
		filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	return filename
}

// TrimArchiveExt removes the file extension of any supported archive type from
// the end of the string.
func TrimArchiveExt(s string) string {
	sext := strings.ToUpper(filepath.Ext(s))
	for _, ext := range ArchiveExtensions {
		if sext == ext {
			return strings.TrimSuffix(s, filepath.Ext(s))
		}
	}
	return s
}

// truncateName copies at most capacity bytes of the name. A capacity of zero
// or less means the default NameCapacity.
func truncateName(name string, capacity int) string {
	if capacity <= 0 {
		capacity = NameCapacity
	}
	if len(name) <= capacity {
		return name
	}
	return strings.Clone(name[:capacity])
}
