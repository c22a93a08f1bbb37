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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/archivefs"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/zeebo/blake3"
)

// Sentinal patterns for errors raised by the cartridgeloader package. Errors
// from the archivefs package are wrapped with ArchiveError.
const (
	FileOpenError     = "cartridgeloader: cannot open %s: %v"
	ArchiveError      = "cartridgeloader: %v"
	UnrecognisedImage = "cartridgeloader: %s is not a recognised image"
	OutOfMemory       = "cartridgeloader: cannot allocate %d bytes for %s"
	ReadError         = "cartridgeloader: error reading %s: %v"
	HashMismatch      = "cartridgeloader: unexpected hash value for %s"
)

// DefaultMaxAllocation is the largest buffer the Loader will allocate if the
// MaxAllocation field is zero.
const DefaultMaxAllocation = 256 * 1024 * 1024

// Loader is used to specify the image to load and, after loading, holds the
// image data and information about it.
type Loader struct {
	// filename of image or archive to load
	Filename string

	// decides which archive member (or plain file) is an image. if nil then
	// IsImage() is used
	Accept archivefs.Acceptor

	// number of bytes of archive member names given to Accept. zero means
	// archivefs.NameCapacity
	NameCapacity int

	// largest buffer that will be allocated for the image. zero means
	// DefaultMaxAllocation
	MaxAllocation int

	// failures are sent to Notify. if nil then notifications.Default is used
	Notify notifications.Notify

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the image data. the length of Data is always a power of two unless the
	// buffer was supplied to LoadInto()
	Data []byte

	// number of bytes of the image in Data
	Size int

	// the archive member the image was read from. for plain files Name and
	// Candidate are the base of the filename
	Entry archivefs.Entry

	// the type of image, decided by the name of the loaded file or member
	Type ImageType

	// the image is a multiboot image. these images are loaded into work RAM
	// rather than the cartridge space
	MultiBoot bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. Archive and
// compression extensions are removed along with the image extension.
func (cl Loader) ShortName() string {
	name := filepath.Base(cl.Filename)
	if cl.Entry.Candidate != "" {
		name = filepath.Base(cl.Entry.Candidate)
	}
	name = archivefs.TrimArchiveExt(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return cl.Size > 0
}

// AllocationSize returns the smallest power of two that is greater than or
// equal to n. The smallest allocation size is one.
func AllocationSize(n int) int {
	sz := 1
	for sz < n {
		sz <<= 1
	}
	return sz
}

// Load the image into a newly allocated buffer. Calling Load() on a Loader
// that has already loaded is not an error and the existing data is kept.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}
	return cl.load(nil, 0)
}

// LoadInto loads the image into the supplied buffer. No more than
// requestedSize bytes are read, or no more than the length of the buffer if
// requestedSize is zero. If buffer is nil a new buffer is allocated.
//
// The Data field will refer to the supplied buffer on success.
func (cl *Loader) LoadInto(buffer []byte, requestedSize int) error {
	return cl.load(buffer, requestedSize)
}

func (cl *Loader) notify(notice notifications.Notice, context string) {
	notifications.Send(cl.Notify, notice, context)
}

func (cl *Loader) maxAllocation() int {
	if cl.MaxAllocation > 0 {
		return cl.MaxAllocation
	}
	return DefaultMaxAllocation
}

func (cl *Loader) load(buffer []byte, requestedSize int) error {
	accept := cl.Accept
	if accept == nil {
		accept = IsImage
	}

	format, err := archivefs.Identify(cl.Filename)
	if err != nil {
		cl.notify(notifications.NotifyCannotOpenFile, cl.Filename)
		return curated.Errorf(FileOpenError, cl.Filename, err)
	}

	if !format.IsArchive() {
		return cl.loadPlain(accept, buffer, requestedSize)
	}

	return cl.loadArchive(accept, buffer, requestedSize)
}

func (cl *Loader) loadPlain(accept archivefs.Acceptor, buffer []byte, requestedSize int) error {
	base := filepath.Base(cl.Filename)
	if !accept(base) {
		cl.notify(notifications.NotifyUnrecognisedImage, cl.Filename)
		return curated.Errorf(UnrecognisedImage, cl.Filename)
	}

	f, err := os.Open(cl.Filename)
	if err != nil {
		cl.notify(notifications.NotifyCannotOpenFile, cl.Filename)
		return curated.Errorf(FileOpenError, cl.Filename, err)
	}
	defer f.Close()

	// get file info. not using Stat() on the file handle because the
	// windows version (when running under wine) does not handle that
	fi, err := os.Stat(cl.Filename)
	if err != nil {
		cl.notify(notifications.NotifyCannotOpenFile, cl.Filename)
		return curated.Errorf(FileOpenError, cl.Filename, err)
	}

	entry := archivefs.Entry{
		Name:      base,
		Candidate: base,
		Size:      fi.Size(),
	}

	return cl.read(f, entry, buffer, requestedSize)
}

func (cl *Loader) loadArchive(accept archivefs.Acceptor, buffer []byte, requestedSize int) error {
	sc, err := archivefs.OpenScanner(cl.Filename)
	if err != nil {
		cl.notifyArchiveError(err)
		return curated.Errorf(ArchiveError, err)
	}
	defer sc.Close()

	sc.NameCapacity = cl.NameCapacity
	sc.SizeLimit = int64(cl.maxAllocation())

	entry, err := sc.Find(accept)
	if err != nil {
		cl.notifyArchiveError(err)
		return curated.Errorf(ArchiveError, err)
	}

	logger.Logf(logger.Allow, "cartridgeloader", "using %s from %s archive %s", entry.Name, sc.Format(), cl.Filename)

	r, err := sc.Open()
	if err != nil {
		cl.notifyArchiveError(err)
		return curated.Errorf(ArchiveError, err)
	}
	defer r.Close()

	return cl.read(r, entry, buffer, requestedSize)
}

func (cl *Loader) notifyArchiveError(err error) {
	switch {
	case curated.Is(err, archivefs.FileOpenError), curated.Is(err, archivefs.ArchiveOpenError):
		cl.notify(notifications.NotifyCannotOpenFile, cl.Filename)
	case curated.Is(err, archivefs.NoAcceptableEntry):
		cl.notify(notifications.NotifyNoImageInArchive, cl.Filename)
	default:
		cl.notify(notifications.NotifyBadArchive, cl.Filename)
	}
}

// read the entry from r. the number of bytes read is the smallest of the entry
// size, the requested size and the length of a supplied buffer.
func (cl *Loader) read(r io.Reader, entry archivefs.Entry, buffer []byte, requestedSize int) error {
	if entry.Size < 0 {
		cl.notify(notifications.NotifyErrorReadingImage, entry.Name)
		return curated.Errorf(ReadError, entry.Name, fmt.Sprintf("invalid size (%d)", entry.Size))
	}

	size := entry.Size
	if requestedSize > 0 && int64(requestedSize) < size {
		size = int64(requestedSize)
	}
	if buffer != nil && int64(len(buffer)) < size {
		size = int64(len(buffer))
	}

	if buffer == nil {
		if size > int64(cl.maxAllocation()) {
			cl.notify(notifications.NotifyOutOfMemory, "data")
			return curated.Errorf(OutOfMemory, size, entry.Name)
		}
		buffer = make([]byte, AllocationSize(int(size)))
	}

	// a short read is accepted so long as something was read. the Size field
	// will report the number of bytes actually read
	n, err := io.ReadFull(r, buffer[:size])
	if n == 0 && err == nil {
		err = io.ErrUnexpectedEOF
	}
	if err != nil && (n == 0 || !errors.Is(err, io.ErrUnexpectedEOF)) {
		cl.notify(notifications.NotifyErrorReadingImage, entry.Name)
		return curated.Errorf(ReadError, entry.Name, err)
	}
	if int64(n) < size {
		logger.Logf(logger.Allow, "cartridgeloader", "short read of %s (%d of %d bytes)", entry.Name, n, size)
	}

	hash := fmt.Sprintf("%x", blake3.Sum256(buffer[:n]))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(HashMismatch, entry.Name)
	}

	cl.Hash = hash
	cl.Data = buffer
	cl.Size = n
	cl.Entry = entry
	cl.Type = TypeOf(entry.Candidate)
	cl.MultiBoot = IsMultiBoot(entry.Candidate)

	return nil
}
