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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/archivefs"
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/checkpoint"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/savetype"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/stream"
	"github.com/jetsetilly/gopherboy/version"
	"github.com/zeebo/blake3"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the program with the arguments and return the exit value.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("INFO", "LOCATE", "CONVERT", "PREFS")

	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(output))
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(output, "* statsview not available in this build")
		} else {
			stop := statsview.Launch(output)
			defer stop()
		}
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopherboy", "unused preferences: %s", unused)
			}
		}()
	}

	pref, err := newPreferences()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, pref)
	case "LOCATE":
		err = locate(md, pref)
	case "CONVERT":
		err = convert(md, pref)
	case "PREFS":
		err = showPrefs(md, pref)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// parse flags for a mode that requires exactly n arguments.
func parseMode(md *modalflag.Modes, min int, max int) (bool, error) {
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, err
	}

	n := len(md.RemainingArgs())
	if n == 0 {
		return false, fmt.Errorf("file required")
	}
	if n < min || n > max {
		return false, fmt.Errorf("wrong number of arguments")
	}
	return true, nil
}

func info(md *modalflag.Modes, pref *preferences) error {
	md.NewMode()
	hash := md.AddString("hash", "", "expected hash of image")

	if ok, err := parseMode(md, 1, 1); !ok {
		return err
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	cl.NameCapacity = pref.nameCapacity.Get().(int)
	cl.Hash = *hash
	if err := cl.Load(); err != nil {
		return err
	}

	w := md.Output
	fmt.Fprintf(w, "file: %s\n", cl.Filename)
	if cl.Entry.Name != filepath.Base(cl.Filename) {
		fmt.Fprintf(w, "entry: %s\n", cl.Entry.Name)
	}
	fmt.Fprintf(w, "name: %s\n", cl.ShortName())
	fmt.Fprintf(w, "type: %s\n", cl.Type)
	fmt.Fprintf(w, "size: %d (allocated %d)\n", cl.Size, len(cl.Data))
	fmt.Fprintf(w, "hash: %s\n", cl.Hash)
	if cl.MultiBoot {
		fmt.Fprintln(w, "multiboot: true")
	}
	if cl.Type == cartridgeloader.ImageGBA {
		fmt.Fprintf(w, "save: %s\n", savetype.Detect(cl.Data[:cl.Size]))
	}

	return nil
}

func locate(md *modalflag.Modes, pref *preferences) error {
	md.NewMode()

	if ok, err := parseMode(md, 1, 1); !ok {
		return err
	}

	sc, err := archivefs.OpenScanner(md.GetArg(0))
	if err != nil {
		return err
	}
	defer sc.Close()

	sc.NameCapacity = pref.nameCapacity.Get().(int)

	entry, err := sc.Find(cartridgeloader.IsImage)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s archive\n", sc.Format())
	fmt.Fprintf(md.Output, "entry: %s\n", entry.Name)
	fmt.Fprintf(md.Output, "candidate: %s\n", entry.Candidate)
	fmt.Fprintf(md.Output, "size: %d\n", entry.Size)

	return nil
}

// convert reads a compressed stream of any codec and writes it as a
// checkpoint with the requested codec. the result is read back and compared
// with the input data. if no output file is named, a unique name is created in
// the same directory as the input.
func convert(md *modalflag.Modes, pref *preferences) error {
	md.NewMode()
	codecName := md.AddString("codec", pref.codec.String(), "codec of output: gzip, lz4, zstd, none")

	if ok, err := parseMode(md, 1, 2); !ok {
		return err
	}

	codec, err := stream.ParseCodec(*codecName)
	if err != nil {
		return err
	}
	if codec == stream.Auto {
		return fmt.Errorf("output codec must be specified")
	}

	in := md.GetArg(0)
	out := md.GetArg(1)
	if out == "" {
		out = filepath.Join(filepath.Dir(in), paths.UniqueFilename("checkpoint", shortName(in)))
	}

	s, err := stream.OpenFile(in, "rb", stream.Auto)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(s)
	s.Close()
	if err != nil {
		return err
	}

	opts := checkpoint.Options{
		Codec:   codec,
		Lenient: !pref.strict.Get().(bool),
		Notify:  notifications.Default,
	}

	vars := []checkpoint.Variable{{Name: "data", Data: data}, {}}

	// compressed size is measured in memory before anything is written to
	// disk
	memory := make([]byte, len(data)*2+1024)
	n, err := checkpoint.SaveMemory(memory, vars, opts)
	if err != nil {
		return err
	}

	if err := checkpoint.Save(out, vars, opts); err != nil {
		return err
	}

	verify := []checkpoint.Variable{{Name: "data", Data: make([]byte, len(data))}, {}}
	if err := checkpoint.Load(out, verify, opts); err != nil {
		return err
	}
	if blake3.Sum256(verify[0].Data) != blake3.Sum256(data) {
		return fmt.Errorf("verification of %s failed", out)
	}

	fmt.Fprintf(md.Output, "%s: %d bytes -> %s: %d bytes (%s)\n", in, len(data), out, n, codec)

	return nil
}

// the name of the file without the directory or any extensions.
func shortName(filename string) string {
	name := archivefs.StripCompressionExt(filepath.Base(filename))
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func showPrefs(md *modalflag.Modes, pref *preferences) error {
	md.NewMode()
	save := md.AddBool("save", false, "save preferences to disk")
	reset := md.AddBool("reset", false, "reset preferences to default values")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *reset {
		if err := pref.dsk.Reset(); err != nil {
			return err
		}
		pref.setDefaults()
	}

	if *save || *reset {
		if err := pref.dsk.Save(); err != nil {
			return err
		}
	}

	io.WriteString(md.Output, pref.dsk.String())

	return nil
}
