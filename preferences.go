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
	"github.com/jetsetilly/gopherboy/archivefs"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/stream"
)

const prefsFile = "preferences.toml"

// preferences for the command line tool. the values are bound to a prefs.Disk
// and are loaded from the resource directory.
type preferences struct {
	dsk *prefs.Disk

	// codec used when writing checkpoints
	codec prefs.String

	// checkpoint variables must be read in full
	strict prefs.Bool

	// number of bytes of an archive member name given to the image acceptor
	nameCapacity prefs.Int
}

func newPreferences() (*preferences, error) {
	p := &preferences{}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("checkpoint.codec", &p.codec); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("checkpoint.strict", &p.strict); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("archive.nameCapacity", &p.nameCapacity); err != nil {
		return nil, err
	}

	// an unknown codec is rejected before it is stored
	p.codec.SetHookPre(func(v prefs.Value) error {
		_, err := stream.ParseCodec(v.(string))
		return err
	})

	p.setDefaults()

	return p, p.dsk.Load()
}

func (p *preferences) setDefaults() {
	_ = p.codec.Set(stream.Gzip.String())
	_ = p.strict.Set(true)
	_ = p.nameCapacity.Set(archivefs.NameCapacity)
}
