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

// Package notifications allow communication from the loading and persistence
// packages to the user facing part of the program. Every failure that the user
// should hear about is sent as a Notice, along with a short context string
// (usually a filename), to an implementation of the Notify interface.
//
// How a notice is presented, and whether it is translated, is a decision for
// the Notify implementation.
package notifications
