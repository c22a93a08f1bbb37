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

package checkpoint_test

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/checkpoint"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/jetsetilly/gopherboy/stream"
	"github.com/jetsetilly/gopherboy/test"
)

// emulator state with a variety of region sizes
type state struct {
	registers [16]byte
	iwram     []byte
	flag      [1]byte
}

func newState(seed byte) *state {
	s := &state{iwram: make([]byte, 0x8000)}
	for i := range s.registers {
		s.registers[i] = seed + byte(i)
	}
	for i := range s.iwram {
		s.iwram[i] = seed ^ byte(i>>3)
	}
	s.flag[0] = seed
	return s
}

func (s *state) variables() []checkpoint.Variable {
	return []checkpoint.Variable{
		{Name: "registers", Data: s.registers[:]},
		{Name: "iwram", Data: s.iwram},
		{Name: "flag", Data: s.flag[:]},
		{},
	}
}

func (s *state) equal(o *state) bool {
	return s.registers == o.registers && bytes.Equal(s.iwram, o.iwram) && s.flag == o.flag
}

func TestRoundTripMemory(t *testing.T) {
	for _, c := range []stream.Codec{stream.Gzip, stream.LZ4, stream.Zstd, stream.None} {
		src := newState(0x42)
		mem := make([]byte, 0x10000)

		n, err := checkpoint.SaveMemory(mem, src.variables(), checkpoint.Options{Codec: c})
		test.DemandSuccess(t, err, c)
		test.ExpectSuccess(t, n > 0, c)

		dst := newState(0)
		err = checkpoint.LoadMemory(mem, n, dst.variables(), checkpoint.Options{})
		test.ExpectSuccess(t, err, c)
		test.ExpectSuccess(t, dst.equal(src), c)
	}
}

func TestRoundTripFile(t *testing.T) {
	for _, c := range []stream.Codec{stream.Gzip, stream.LZ4, stream.Zstd, stream.None} {
		fn := filepath.Join(t.TempDir(), "game.sgm")
		src := newState(0x11)

		test.DemandSuccess(t, checkpoint.Save(fn, src.variables(), checkpoint.Options{Codec: c}), c)

		dst := newState(0)
		test.ExpectSuccess(t, checkpoint.Load(fn, dst.variables(), checkpoint.Options{}), c)
		test.ExpectSuccess(t, dst.equal(src), c)
	}
}

func TestSentinel(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3, 4}
	vars := []checkpoint.Variable{{Name: "a", Data: a}, {}, {Name: "b", Data: b}}

	test.ExpectEquality(t, checkpoint.Size(vars), 2)

	w := &bytes.Buffer{}
	test.ExpectSuccess(t, checkpoint.WriteData(w, vars))
	test.ExpectSuccess(t, bytes.Equal(w.Bytes(), []byte{1, 2}))
}

func TestTruncated(t *testing.T) {
	dst := newState(0)
	r := bytes.NewReader(make([]byte, 20))

	err := checkpoint.ReadData(r, dst.variables())
	test.ExpectSuccess(t, curated.Is(err, checkpoint.ReadTruncated))
	test.ExpectEquality(t, err.Error(), "checkpoint: iwram truncated (4 of 32768 bytes)")

	// lenient reading accepts the same data
	dst = newState(0xff)
	r = bytes.NewReader(make([]byte, 20))
	err = checkpoint.ReadDataLenient(r, dst.variables())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dst.registers[0], byte(0))
	test.ExpectEquality(t, dst.iwram[3], byte(0))
	test.ExpectEquality(t, dst.flag[0], byte(0xff))
}

func TestSkip(t *testing.T) {
	mem := make([]byte, 0x10000)
	src := newState(0x30)

	header := []checkpoint.Variable{{Name: "registers", Data: src.registers[:]}}
	n, err := checkpoint.SaveMemory(mem, src.variables(), checkpoint.Options{Codec: stream.Gzip})
	test.DemandSuccess(t, err)

	s, err := stream.OpenMemory(mem, n, "rb", stream.Auto)
	test.DemandSuccess(t, err)
	defer s.Close()

	test.ExpectSuccess(t, checkpoint.SkipData(s, header))

	iwram := make([]byte, 0x8000)
	test.ExpectSuccess(t, checkpoint.ReadData(s, []checkpoint.Variable{{Name: "iwram", Data: iwram}}))
	test.ExpectSuccess(t, bytes.Equal(iwram, src.iwram))
}

func TestInt(t *testing.T) {
	w := &bytes.Buffer{}
	test.ExpectSuccess(t, checkpoint.WriteInt(w, -2))
	test.ExpectSuccess(t, checkpoint.WriteInt(w, 0x12345678))
	test.ExpectSuccess(t, bytes.Equal(w.Bytes()[4:], []byte{0x78, 0x56, 0x34, 0x12}))

	v, err := checkpoint.ReadInt(w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, int32(-2))
	v, err = checkpoint.ReadInt(w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, int32(0x12345678))

	_, err = checkpoint.ReadInt(w)
	test.ExpectSuccess(t, curated.Is(err, checkpoint.ReadTruncated))
}

type failingWriter struct {
	allowed int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.allowed {
		return 0, io.ErrShortWrite
	}
	f.allowed -= len(p)
	return len(p), nil
}

func TestWriteFailure(t *testing.T) {
	src := newState(1)
	err := checkpoint.WriteData(&failingWriter{allowed: 16}, src.variables())
	test.ExpectSuccess(t, curated.Is(err, checkpoint.WriteError))
	test.ExpectSuccess(t, curated.IsAny(err))
}

type recorder struct {
	notices []notifications.Notice
}

func (r *recorder) Notify(notice notifications.Notice, _ string) error {
	r.notices = append(r.notices, notice)
	return nil
}

func TestFileNotifications(t *testing.T) {
	r := &recorder{}
	dir := t.TempDir()

	err := checkpoint.Load(filepath.Join(dir, "missing.sgm"), newState(0).variables(), checkpoint.Options{Notify: r})
	test.ExpectSuccess(t, curated.Is(err, stream.FileOpenError))

	err = checkpoint.Save(filepath.Join(dir, "nodir", "x.sgm"), newState(0).variables(), checkpoint.Options{Notify: r})
	test.ExpectSuccess(t, curated.Is(err, stream.FileOpenError))

	test.DemandEquality(t, len(r.notices), 2)
	test.ExpectEquality(t, r.notices[0], notifications.NotifyCannotOpenFile)
	test.ExpectEquality(t, r.notices[1], notifications.NotifyCreatingFile)
}

func TestMemoryTooSmall(t *testing.T) {
	src := newState(0x42)
	_, err := checkpoint.SaveMemory(make([]byte, 8), src.variables(), checkpoint.Options{Codec: stream.None})
	test.ExpectFailure(t, err)
}
