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

package notifications

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/logger"
)

// Notice describes events that somehow change the presentation of the
// emulation. Notices are mostly failures that the user should be told about.
type Notice string

// List of defined notices.
const (
	// a file could not be created for writing
	NotifyCreatingFile Notice = "NotifyCreatingFile"

	// a file (or archive) could not be opened for reading
	NotifyCannotOpenFile Notice = "NotifyCannotOpenFile"

	// an archive was opened but could not be read to completion
	NotifyBadArchive Notice = "NotifyBadArchive"

	// no entry in an archive was acceptable
	NotifyNoImageInArchive Notice = "NotifyNoImageInArchive"

	// a file that is not an archive is not a recognised image either
	NotifyUnrecognisedImage Notice = "NotifyUnrecognisedImage"

	// memory for an image could not be allocated
	NotifyOutOfMemory Notice = "NotifyOutOfMemory"

	// the image data could not be read
	NotifyErrorReadingImage Notice = "NotifyErrorReadingImage"
)

// messages are the default human readable text for each Notice
var messages = map[Notice]string{
	NotifyCreatingFile:      "Error creating file %s",
	NotifyCannotOpenFile:    "Cannot open file %s",
	NotifyBadArchive:        "Cannot read archive %s",
	NotifyNoImageInArchive:  "No image found in file %s",
	NotifyUnrecognisedImage: "Unrecognised image %s",
	NotifyOutOfMemory:       "Failed to allocate memory for %s",
	NotifyErrorReadingImage: "Error reading image from %s",
}

// Message returns the human readable text for the notice, with the context
// string inserted.
func (n Notice) Message(context string) string {
	if m, ok := messages[n]; ok {
		return fmt.Sprintf(m, context)
	}
	return fmt.Sprintf("%s: %s", string(n), context)
}

// Notify is used for direct communication between the loading and
// persistence packages and the user facing part of the program.
type Notify interface {
	Notify(notice Notice, context string) error
}

// LogNotifier is an implementation of Notify that sends every notice to the
// central logger.
type LogNotifier struct {
	Tag string
}

// Notify implements the Notify interface.
func (n LogNotifier) Notify(notice Notice, context string) error {
	tag := n.Tag
	if tag == "" {
		tag = "notify"
	}
	logger.Log(logger.Allow, tag, notice.Message(context))
	return nil
}

// Default is used when a nil Notify is given to a function that expects one.
var Default Notify = LogNotifier{}

// Send is a convenience function that sends notice to notify, or to Default if
// notify is nil. Any error from the Notify implementation is logged and
// otherwise ignored.
func Send(notify Notify, notice Notice, context string) {
	if notify == nil {
		notify = Default
	}
	if err := notify.Notify(notice, context); err != nil {
		logger.Logf(logger.Allow, "notify", "%s: %v", notice, err)
	}
}
