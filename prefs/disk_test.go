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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/test"
)

type testPrefs struct {
	dsk      *prefs.Disk
	codec    prefs.String
	strict   prefs.Bool
	capacity prefs.Int
}

func newTestPrefs(t *testing.T, fn string) *testPrefs {
	t.Helper()

	p := &testPrefs{}

	var err error
	p.dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.dsk.Add("checkpoint.codec", &p.codec))
	test.DemandSuccess(t, p.dsk.Add("checkpoint.strict", &p.strict))
	test.DemandSuccess(t, p.dsk.Add("archive.nameCapacity", &p.capacity))

	return p
}

func TestDiskRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")

	p := newTestPrefs(t, fn)

	// loading a missing file is not an error
	test.ExpectSuccess(t, p.dsk.Load())

	test.DemandSuccess(t, p.codec.Set("zstd"))
	test.DemandSuccess(t, p.strict.Set(true))
	test.DemandSuccess(t, p.capacity.Set(2048))
	test.DemandSuccess(t, p.dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))

	q := newTestPrefs(t, fn)
	test.DemandSuccess(t, q.dsk.Load())
	test.ExpectEquality(t, q.codec.String(), "zstd")
	test.ExpectEquality(t, q.strict.Get(), prefs.Value(true))
	test.ExpectEquality(t, q.capacity.Get(), prefs.Value(2048))
}

func TestDiskTables(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	err := os.WriteFile(fn, []byte("[checkpoint]\ncodec = 'lz4'\nstrict = false\n"), 0600)
	test.DemandSuccess(t, err)

	p := newTestPrefs(t, fn)
	test.DemandSuccess(t, p.strict.Set(true))
	test.DemandSuccess(t, p.dsk.Load())
	test.ExpectEquality(t, p.codec.String(), "lz4")
	test.ExpectEquality(t, p.strict.Get(), prefs.Value(false))
}

func TestDiskPreservesUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	err := os.WriteFile(fn, []byte("'other.key' = 'kept'\n'checkpoint.compress' = true\n"), 0600)
	test.DemandSuccess(t, err)

	p := newTestPrefs(t, fn)
	test.DemandSuccess(t, p.dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "other.key"))
	test.ExpectFailure(t, strings.Contains(string(data), "checkpoint.compress"))
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	p := newTestPrefs(t, fn)
	test.DemandSuccess(t, p.codec.Set("gzip"))
	test.DemandSuccess(t, p.dsk.Save())

	prefs.PushCommandLineStack("checkpoint.codec::none")
	defer prefs.PopCommandLineStack()

	q := newTestPrefs(t, fn)
	test.DemandSuccess(t, q.dsk.Load())
	test.ExpectEquality(t, q.codec.String(), "none")
}

func TestDiskErrors(t *testing.T) {
	_, err := prefs.NewDisk("")
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "prefs.toml")
	p := newTestPrefs(t, fn)

	var dup prefs.Bool
	err = p.dsk.Add("checkpoint.strict", &dup)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.DemandSuccess(t, os.WriteFile(fn, []byte("this is = = not toml"), 0600))
	test.ExpectFailure(t, p.dsk.Load())

	test.ExpectEquality(t, strings.Join(p.dsk.Keys(), ","), "archive.nameCapacity,checkpoint.codec,checkpoint.strict")
}
