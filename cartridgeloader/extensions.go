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

package cartridgeloader

import (
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/archivefs"
)

// GBAExtensions is the list of file extensions that are recognised as Game Boy
// Advance images.
var GBAExtensions = [...]string{".AGB", ".GBA", ".BIN", ".ELF", ".MB"}

// GBExtensions is the list of file extensions that are recognised as Game Boy
// images.
var GBExtensions = [...]string{".DMG", ".GB", ".GBC", ".CGB", ".SGB"}

// the multiboot extension is a GBA image that is loaded into work RAM rather
// than run from the cartridge
const multiBootExtension = ".MB"

// ImageType is the type of console the image is for.
type ImageType int

// List of valid ImageType values.
const (
	ImageUnknown ImageType = iota
	ImageGBA
	ImageGB
)

func (t ImageType) String() string {
	switch t {
	case ImageGBA:
		return "GBA"
	case ImageGB:
		return "GB"
	}
	return "unknown"
}

func hasExtension(filename string, extensions []string) bool {
	// a name must have something before the extension
	ext := filepath.Ext(filename)
	if len(ext) == len(filename) {
		return false
	}
	ext = strings.ToUpper(ext)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsGBAImage returns true if filename has a Game Boy Advance extension.
func IsGBAImage(filename string) bool {
	return hasExtension(filename, GBAExtensions[:])
}

// IsGBImage returns true if filename has a Game Boy extension.
func IsGBImage(filename string) bool {
	return hasExtension(filename, GBExtensions[:])
}

// IsImage returns true if filename has any recognised image extension. It is
// the default Acceptor for the Loader type.
func IsImage(filename string) bool {
	return IsGBAImage(filename) || IsGBImage(filename)
}

// IsMultiBoot returns true if the filename has the multiboot extension.
func IsMultiBoot(filename string) bool {
	return hasExtension(filename, []string{multiBootExtension})
}

// TypeOf returns the ImageType suggested by the filename.
func TypeOf(filename string) ImageType {
	switch {
	case IsGBAImage(filename):
		return ImageGBA
	case IsGBImage(filename):
		return ImageGB
	}
	return ImageUnknown
}

// FindType returns the type of image in the named file. If the filename is
// not itself an image then it is searched as an archive for the first member
// that is an image.
func FindType(filename string) (ImageType, error) {
	if IsImage(filename) {
		return TypeOf(filename), nil
	}

	entry, err := archivefs.Locate(filename, IsImage)
	if err != nil {
		return ImageUnknown, err
	}

	return TypeOf(entry.Candidate), nil
}
