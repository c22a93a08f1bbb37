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

// Package paths contains functions to prepare paths to Gopherboy resources.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. The directory is created if necessary.
// For example, the following will return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences.toml")
//
// For development builds the base path is ".gopherboy" in the current
// directory. For release builds, built with the release tag, the base path is
// the "gopherboy" directory in the user's config directory. On a modern Linux
// system:
//
//	/home/user/.config/gopherboy/preferences.toml
package paths
