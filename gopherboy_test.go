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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/checkpoint"
	"github.com/jetsetilly/gopherboy/stream"
	"github.com/jetsetilly/gopherboy/test"
	"github.com/klauspost/compress/zip"
)

// the preferences file is created relative to the working directory so each
// test moves to a temporary directory
func workspace(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
	})
	return dir
}

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out strings.Builder
	ret := launch(&out, args)
	return ret, out.String()
}

func TestInfo(t *testing.T) {
	dir := workspace(t)

	image := make([]byte, 1000)
	copy(image[256:], "FLASH1M_V103")
	copy(image[512:], "SIIRTC_V001")

	b := &bytes.Buffer{}
	zw := zip.NewWriter(b)
	w, err := zw.Create("pokemon.gba")
	test.DemandSuccess(t, err)
	_, err = w.Write(image)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())

	fn := filepath.Join(dir, "pokemon.zip")
	test.DemandSuccess(t, os.WriteFile(fn, b.Bytes(), 0644))

	ret, out := run(t, "info", fn)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out, "entry: pokemon.gba\n"))
	test.ExpectSuccess(t, strings.Contains(out, "type: GBA\n"))
	test.ExpectSuccess(t, strings.Contains(out, "size: 1000 (allocated 1024)\n"))
	test.ExpectSuccess(t, strings.Contains(out, "save: FLASH_1M (128K) + RTC\n"))

	// info is the default mode
	ret, out = run(t, fn)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out, "type: GBA\n"))

	ret, _ = run(t, "info", "--hash", "0000", fn)
	test.ExpectEquality(t, ret, 20)
}

func TestLocate(t *testing.T) {
	dir := workspace(t)

	b := &bytes.Buffer{}
	zw := zip.NewWriter(b)
	for _, name := range []string{"readme.txt", "tetris.gb"} {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(name))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	fn := filepath.Join(dir, "collection.zip")
	test.DemandSuccess(t, os.WriteFile(fn, b.Bytes(), 0644))

	ret, out := run(t, "locate", fn)
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "zip archive\n"))
	test.ExpectSuccess(t, strings.Contains(out, "entry: tetris.gb\n"))

	ret, _ = run(t, "locate")
	test.ExpectEquality(t, ret, 20)
}

func TestConvert(t *testing.T) {
	dir := workspace(t)

	data := bytes.Repeat([]byte("gopherboy "), 100)

	in := filepath.Join(dir, "state.sav")
	s, err := stream.OpenFile(in, "wb", stream.Gzip)
	test.DemandSuccess(t, err)
	_, err = s.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Close())

	out := filepath.Join(dir, "state.zst")
	ret, msg := run(t, "convert", "--codec", "zstd", in, out)
	test.ExpectEquality(t, ret, 0, msg)

	s, err = stream.OpenFile(out, "rb", stream.Auto)
	test.DemandSuccess(t, err)
	defer s.Close()
	test.ExpectEquality(t, s.Codec(), stream.Zstd)

	ret, _ = run(t, "convert", "--codec", "auto", in, out)
	test.ExpectEquality(t, ret, 20)
}

func TestConvertUniqueName(t *testing.T) {
	dir := workspace(t)

	data := []byte("pokemon ruby")

	in := filepath.Join(dir, "state.sav.gz")
	s, err := stream.OpenFile(in, "wb", stream.Gzip)
	test.DemandSuccess(t, err)
	_, err = s.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Close())

	ret, msg := run(t, "convert", "--codec", "lz4", in)
	test.ExpectEquality(t, ret, 0, msg)

	matches, err := filepath.Glob(filepath.Join(dir, "checkpoint_state_*"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(matches), 1)
	test.ExpectSuccess(t, strings.Contains(msg, matches[0]))

	vars := []checkpoint.Variable{{Name: "data", Data: make([]byte, len(data))}, {}}
	test.DemandSuccess(t, checkpoint.Load(matches[0], vars, checkpoint.Options{}))
	test.ExpectEquality(t, string(vars[0].Data), string(data))

	ret, _ = run(t, "convert", in, "a", "b")
	test.ExpectEquality(t, ret, 20)
}

func TestPrefs(t *testing.T) {
	workspace(t)

	ret, out := run(t, "prefs")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out, "checkpoint.codec :: gzip\n"))
	test.ExpectSuccess(t, strings.Contains(out, "archive.nameCapacity :: 2048\n"))

	ret, out = run(t, "--prefs", "checkpoint.codec::lz4", "prefs", "--save")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out, "checkpoint.codec :: lz4\n"))

	// saved value is used on the next run
	ret, out = run(t, "prefs")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out, "checkpoint.codec :: lz4\n"))

	ret, _ = run(t, "--prefs", "checkpoint.codec::rar", "prefs")
	test.ExpectEquality(t, ret, 10)
}

func TestVersion(t *testing.T) {
	ret, out := run(t, "--version")
	test.ExpectEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "Gopherboy "))
}
