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
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

// Format of a file as far as the archivefs package is concerned.
type Format int

// List of valid Format values.
const (
	Plain Format = iota
	Zip
	Tar
	TarGzip
	Gzip
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Zip:
		return "zip"
	case Tar:
		return "tar"
	case TarGzip:
		return "tar.gz"
	case Gzip:
		return "gzip"
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// IsArchive returns true if the format is anything other than Plain.
func (f Format) IsArchive() bool {
	return f != Plain
}

// Identify the format of the named file. The format is decided by the content
// of the file.
func Identify(filename string) (Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Plain, err
	}
	defer f.Close()
	return identify(f)
}

var (
	magicZip      = []byte("PK\x03\x04")
	magicZipEmpty = []byte("PK\x05\x06")
	magicGzip     = []byte{0x1f, 0x8b}
	magicTar      = []byte("ustar")
)

const tarMagicOffset = 257

func isTar(header []byte) bool {
	if len(header) < tarMagicOffset+len(magicTar) {
		return false
	}
	return bytes.Equal(header[tarMagicOffset:tarMagicOffset+len(magicTar)], magicTar)
}

// identify leaves the ReadSeeker at the start of the data.
func identify(f io.ReadSeeker) (Format, error) {
	header := make([]byte, 512)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Plain, err
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Plain, err
	}

	switch {
	case bytes.HasPrefix(header, magicZip) || bytes.HasPrefix(header, magicZipEmpty):
		return Zip, nil

	case bytes.HasPrefix(header, magicGzip):
		// a tar file inside a gzip file can only be told apart from any
		// other gzipped file by looking inside
		format := Gzip
		gz, err := gzip.NewReader(f)
		if err == nil {
			inner := make([]byte, 512)
			n, _ := io.ReadFull(gz, inner)
			if isTar(inner[:n]) {
				format = TarGzip
			}
			gz.Close()
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return Plain, err
		}
		return format, nil

	case isTar(header):
		return Tar, nil
	}

	return Plain, nil
}

// members is the iteration over the members of an archive. Implementations
// return members in the order the archive stores them.
type members interface {
	// advance to the next member. returns io.EOF when there are no more
	// members
	next() (name string, size int64, err error)

	// open the current member for reading
	open() (io.ReadCloser, error)

	close() error
}

func openMembers(format Format, f *os.File) (members, error) {
	switch format {
	case Zip:
		fi, err := f.Stat()
		if err != nil {
			return nil, err
		}
		zr, err := zip.NewReader(f, fi.Size())
		if err != nil {
			return nil, err
		}
		return &zipMembers{zr: zr}, nil

	case Tar:
		return &tarMembers{tr: tar.NewReader(f)}, nil

	case TarGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &tarMembers{tr: tar.NewReader(gz), gz: gz}, nil

	case Gzip:
		return openGzipMember(f)
	}

	return nil, fmt.Errorf("%s is not an archive", filepath.Base(f.Name()))
}

type zipMembers struct {
	zr  *zip.Reader
	idx int
	cur *zip.File
}

func (m *zipMembers) next() (string, int64, error) {
	for m.idx < len(m.zr.File) {
		zf := m.zr.File[m.idx]
		m.idx++
		if zf.FileInfo().IsDir() {
			continue
		}
		if zf.UncompressedSize64 > math.MaxInt64 {
			return "", 0, fmt.Errorf("%s: size too large (%d)", zf.Name, zf.UncompressedSize64)
		}
		m.cur = zf
		return zf.Name, int64(zf.UncompressedSize64), nil
	}
	return "", 0, io.EOF
}

func (m *zipMembers) open() (io.ReadCloser, error) {
	if m.cur == nil {
		return nil, fmt.Errorf("no current member")
	}
	return m.cur.Open()
}

func (m *zipMembers) close() error {
	return nil
}

type tarMembers struct {
	tr *tar.Reader
	gz io.Closer
}

func (m *tarMembers) next() (string, int64, error) {
	for {
		hdr, err := m.tr.Next()
		if err != nil {
			return "", 0, err
		}
		if !hdr.FileInfo().Mode().IsRegular() {
			continue
		}
		return hdr.Name, hdr.Size, nil
	}
}

func (m *tarMembers) open() (io.ReadCloser, error) {
	// the tar reader reads the current member until Next() is called
	return io.NopCloser(m.tr), nil
}

func (m *tarMembers) close() error {
	if m.gz != nil {
		return m.gz.Close()
	}
	return nil
}

// a gzip file is an archive of exactly one member. the size recorded in the
// gzip trailer only covers the last member of a multi-member file and is
// stored modulo 2^32 so the size is found by decompressing the file
type gzipMembers struct {
	f     *os.File
	gz    *gzip.Reader
	name  string
	limit int64
	done  bool
}

func openGzipMember(f *os.File) (*gzipMembers, error) {
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}

	// the name recorded in the gzip header is preferred. otherwise the name
	// of the gzip file itself, which will have its extension removed when it
	// is judged
	name := gz.Header.Name
	if name == "" {
		name = filepath.Base(f.Name())
	}

	return &gzipMembers{
		f:    f,
		gz:   gz,
		name: name,
	}, nil
}

func (m *gzipMembers) setSizeLimit(limit int64) {
	m.limit = limit
}

// measure the decompressed size of the file. if a limit has been set then
// measuring stops after limit+1 bytes
func (m *gzipMembers) measure() (int64, error) {
	var size int64
	var err error
	if m.limit > 0 {
		size, err = io.CopyN(io.Discard, m.gz, m.limit+1)
		if err == io.EOF {
			err = nil
		}
	} else {
		size, err = io.Copy(io.Discard, m.gz)
	}
	if err != nil {
		return 0, err
	}

	if _, err := m.f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	if err := m.gz.Reset(m.f); err != nil {
		return 0, err
	}

	return size, nil
}

func (m *gzipMembers) next() (string, int64, error) {
	if m.done {
		return "", 0, io.EOF
	}
	m.done = true

	size, err := m.measure()
	if err != nil {
		return "", 0, err
	}

	return m.name, size, nil
}

func (m *gzipMembers) open() (io.ReadCloser, error) {
	return io.NopCloser(m.gz), nil
}

func (m *gzipMembers) close() error {
	return m.gz.Close()
}
