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
	"io"
	"os"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal patterns for errors raised by the archivefs package.
const (
	FileOpenError     = "archivefs: cannot open file %s: %v"
	ArchiveOpenError  = "archivefs: cannot open archive %s: %v"
	ArchiveReadError  = "archivefs: cannot read archive %s: %v"
	NoAcceptableEntry = "archivefs: no image found in file %s"
	NoEntry           = "archivefs: no entry has been found in %s"
)

// NameCapacity is the default number of bytes of a member name that are
// considered by the Acceptor. Longer names are truncated.
const NameCapacity = 2048

// members that must be decompressed to find their size accept a limit
type sizeLimiter interface {
	setSizeLimit(limit int64)
}

// Acceptor decides whether an archive member is the one to load. The argument
// is the candidate name of the member.
type Acceptor func(name string) bool

// Entry is a member of an archive that has been accepted. It is only valid
// while the Scanner that found it is open.
type Entry struct {
	// the real name of the member
	Name string

	// the name given to the Acceptor
	Candidate string

	// uncompressed size of the member
	Size int64
}

func (e Entry) String() string {
	return e.Name
}

// Scanner iterates over the members of an archive.
type Scanner struct {
	// number of bytes of a member name considered by Find(). if zero then the
	// NameCapacity constant is used
	NameCapacity int

	// members that must be decompressed to find their size (a single gzip
	// file) stop being measured after SizeLimit+1 bytes. the Size of the
	// Entry will be SizeLimit+1 in that case. zero means no limit
	SizeLimit int64

	filename string
	format   Format
	f        *os.File
	m        members

	entry Entry
	found bool
}

// OpenScanner opens the archive for scanning. The file must be recognised as
// an archive.
func OpenScanner(filename string) (*Scanner, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileOpenError, filename, err)
	}

	format, err := identify(f)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(FileOpenError, filename, err)
	}

	m, err := openMembers(format, f)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(ArchiveOpenError, filename, err)
	}

	return &Scanner{
		filename: filename,
		format:   format,
		f:        f,
		m:        m,
	}, nil
}

// Format returns the format of the archive being scanned.
func (sc *Scanner) Format() Format {
	return sc.format
}

// Find the first member accepted by the Acceptor. Members are tried in the
// order they are stored in the archive and no member after the accepted
// member is looked at. A nil Acceptor accepts the first member.
//
// A read error while moving from one member to the next stops the scan
// immediately.
func (sc *Scanner) Find(accept Acceptor) (Entry, error) {
	if l, ok := sc.m.(sizeLimiter); ok {
		l.setSizeLimit(sc.SizeLimit)
	}

	for {
		name, size, err := sc.m.next()
		if err == io.EOF {
			return Entry{}, curated.Errorf(NoAcceptableEntry, sc.filename)
		}
		if err != nil {
			return Entry{}, curated.Errorf(ArchiveReadError, sc.filename, err)
		}

		candidate := StripCompressionExt(truncateName(name, sc.NameCapacity))
		if accept == nil || accept(candidate) {
			sc.entry = Entry{
				Name:      name,
				Candidate: candidate,
				Size:      size,
			}
			sc.found = true
			return sc.entry, nil
		}
	}
}

// Open the member most recently found by Find() for reading.
func (sc *Scanner) Open() (io.ReadCloser, error) {
	if !sc.found {
		return nil, curated.Errorf(NoEntry, sc.filename)
	}
	r, err := sc.m.open()
	if err != nil {
		return nil, curated.Errorf(ArchiveReadError, sc.filename, err)
	}
	return r, nil
}

// Close the archive. Any Entry found by the Scanner is no longer valid.
func (sc *Scanner) Close() error {
	err := sc.m.close()
	if ferr := sc.f.Close(); err == nil {
		err = ferr
	}
	sc.found = false
	return err
}

// Locate is a convenience function that opens the archive, finds the first
// member accepted by the Acceptor and closes the archive.
func Locate(filename string, accept Acceptor) (Entry, error) {
	sc, err := OpenScanner(filename)
	if err != nil {
		return Entry{}, err
	}
	defer sc.Close()
	return sc.Find(accept)
}
