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

package prefs

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
	toml "github.com/pelletier/go-toml/v2"
)

// Sentinal patterns for errors raised by the Disk type.
const (
	DuplicateKey = "prefs: duplicate key %s"
	DiskError    = "prefs: %s: %v"
)

// WarningBoilerPlate is written at the top of every prefs file.
const WarningBoilerPlate = "# *** do not edit this file by hand while Gopherboy is running ***"

// Disk binds prefs values to keys and saves and loads them to a TOML file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not read until Load() is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "new disk", "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a prefs value to the Disk under the key. Keys cannot be added twice.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the keys added to the Disk in sorted order.
func (dsk *Disk) Keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns each key and value on a separate line.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.Keys() {
		s.WriteString(k)
		s.WriteString(" :: ")
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// flatten nested TOML tables into dotted keys
func flatten(prefix string, m map[string]any, flat map[string]any) {
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		if t, ok := v.(map[string]any); ok {
			flatten(k, t, flat)
			continue
		}
		flat[k] = v
	}
}

// read the prefs file. a missing file is not an error
func (dsk *Disk) read() (map[string]any, error) {
	flat := make(map[string]any)

	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return flat, nil
		}
		return nil, err
	}

	var m map[string]any
	if err := toml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	flatten("", m, flat)

	return flat, nil
}

// Save the current values of the Disk to the prefs file. Values in the file
// for keys that have not been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, "save", err)
	}

	for k := range values {
		if isDefunct(k) {
			delete(values, k)
		}
	}
	for k, p := range dsk.entries {
		values[k] = p.Get()
	}

	b, err := toml.Marshal(values)
	if err != nil {
		return curated.Errorf(DiskError, "save", err)
	}

	data := make([]byte, 0, len(WarningBoilerPlate)+1+len(b))
	data = append(data, WarningBoilerPlate...)
	data = append(data, '\n')
	data = append(data, b...)

	if err := os.WriteFile(dsk.path, data, 0600); err != nil {
		return curated.Errorf(DiskError, "save", err)
	}

	return nil
}

// Load values from the prefs file into the values added to the Disk. Values
// in the top group of the command line stack take precedence over those in
// the file.
func (dsk *Disk) Load() error {
	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, "load", err)
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, "load", err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line", k)
			continue
		}

		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, "load", err)
			}
		}
	}

	return nil
}

// Reset every value added to the Disk to its zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, "reset", err)
		}
	}
	return nil
}
