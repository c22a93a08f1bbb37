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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/test"
)

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsGBAImage("game.gba"))
	test.ExpectSuccess(t, cartridgeloader.IsGBAImage("GAME.AGB"))
	test.ExpectSuccess(t, cartridgeloader.IsGBAImage("roms/game.elf"))
	test.ExpectSuccess(t, cartridgeloader.IsGBAImage("game.bin"))
	test.ExpectSuccess(t, cartridgeloader.IsGBAImage("demo.mb"))
	test.ExpectFailure(t, cartridgeloader.IsGBAImage("game.gb"))
	test.ExpectFailure(t, cartridgeloader.IsGBAImage(".gba"))

	test.ExpectSuccess(t, cartridgeloader.IsGBImage("game.gb"))
	test.ExpectSuccess(t, cartridgeloader.IsGBImage("game.GBC"))
	test.ExpectSuccess(t, cartridgeloader.IsGBImage("game.dmg"))
	test.ExpectSuccess(t, cartridgeloader.IsGBImage("game.cgb"))
	test.ExpectSuccess(t, cartridgeloader.IsGBImage("game.sgb"))
	test.ExpectFailure(t, cartridgeloader.IsGBImage("game.gba"))

	test.ExpectFailure(t, cartridgeloader.IsImage("game.zip"))
	test.ExpectFailure(t, cartridgeloader.IsImage("game"))

	test.ExpectSuccess(t, cartridgeloader.IsMultiBoot("demo.mb"))
	test.ExpectFailure(t, cartridgeloader.IsMultiBoot("demo.gba"))
}

func TestFindType(t *testing.T) {
	typ, err := cartridgeloader.FindType("nonexistent.gba")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, typ, cartridgeloader.ImageGBA)

	fn := filepath.Join(t.TempDir(), "collection.zip")
	test.DemandSuccess(t, os.WriteFile(fn, zipBytes(t, "readme.txt", "hello", "tetris.gb", "blocks"), 0644))
	typ, err = cartridgeloader.FindType(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, typ, cartridgeloader.ImageGB)
	test.ExpectEquality(t, typ.String(), "GB")

	fn = filepath.Join(t.TempDir(), "notes.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("notes"), 0644))
	typ, err = cartridgeloader.FindType(fn)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, typ, cartridgeloader.ImageUnknown)
}
