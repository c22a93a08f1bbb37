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

// Package savetype infers the save memory configuration of a cartridge by
// scanning the image for the signatures left in it by the library code of the
// console's development kit.
//
// Signatures are only looked for at word aligned offsets. The first save type
// found wins, except that a FLASH1M signature anywhere in the image refines
// an earlier plain FLASH signature. Real time clock detection is independent
// of the save type.
package savetype

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Type of save memory.
type Type int

// List of valid Type values.
const (
	None Type = iota
	SRAM
	Flash
	Flash1M
	EEPROM
)

func (t Type) String() string {
	switch t {
	case None:
		return "NONE"
	case SRAM:
		return "SRAM"
	case Flash:
		return "FLASH"
	case Flash1M:
		return "FLASH_1M"
	case EEPROM:
		return "EEPROM"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// Flash sizes.
const (
	FlashSize64K  = 0x10000
	FlashSize128K = 0x20000
)

// Config is the result of detection. A Config is never changed after it has
// been created.
type Config struct {
	Type      Type
	FlashSize int
	HasRTC    bool
}

func (c Config) String() string {
	s := c.Type.String()
	if c.Type == Flash || c.Type == Flash1M {
		s = fmt.Sprintf("%s (%dK)", s, c.FlashSize/1024)
	}
	if c.HasRTC {
		s = fmt.Sprintf("%s + RTC", s)
	}
	return s
}

// the signatures. the first four bytes of each is checked as a little-endian
// word before the full text is compared
var (
	sigEEPROM  = []byte("EEPROM_")
	sigSRAM    = []byte("SRAM_")
	sigFlash1M = []byte("FLASH1M_")
	sigFlash   = []byte("FLASH")
	sigRTC     = []byte("SIIRTC_V")
)

var (
	wordEEPROM = binary.LittleEndian.Uint32(sigEEPROM)
	wordSRAM   = binary.LittleEndian.Uint32(sigSRAM)
	wordFlash  = binary.LittleEndian.Uint32(sigFlash)
	wordRTC    = binary.LittleEndian.Uint32(sigRTC)
)

// Detect scans the image for save signatures. The scan always runs to the end
// of the image because the RTC signature can appear after the save signature.
func Detect(image []byte) Config {
	cfg := Config{
		Type:      None,
		FlashSize: FlashSize64K,
	}

	found := false
	set := func(t Type, size int) {
		if !found {
			found = true
			cfg.Type = t
			cfg.FlashSize = size
		}
	}

	for i := 0; i+4 <= len(image); i += 4 {
		p := image[i:]

		switch binary.LittleEndian.Uint32(p) {
		case wordEEPROM:
			if bytes.HasPrefix(p, sigEEPROM) {
				set(EEPROM, cfg.FlashSize)
			}
		case wordSRAM:
			if bytes.HasPrefix(p, sigSRAM) {
				set(SRAM, cfg.FlashSize)
			}
		case wordFlash:
			if bytes.HasPrefix(p, sigFlash1M) {
				// the 1M flash library also links the generic flash code
				if cfg.Type == Flash {
					cfg.Type = Flash1M
					cfg.FlashSize = FlashSize128K
				}
				set(Flash1M, FlashSize128K)
			} else if bytes.HasPrefix(p, sigFlash) {
				set(Flash, FlashSize64K)
			}
		case wordRTC:
			if bytes.HasPrefix(p, sigRTC) {
				cfg.HasRTC = true
			}
		}
	}

	return cfg
}

// Controller is the part of the memory sub-system that applies a save
// configuration.
type Controller interface {
	EnableRTC(bool)
	SetSaveType(Type)
	SetFlashSize(int)
}

// Apply the configuration to the controller.
func Apply(ctrl Controller, cfg Config) {
	ctrl.EnableRTC(cfg.HasRTC)
	ctrl.SetSaveType(cfg.Type)
	ctrl.SetFlashSize(cfg.FlashSize)
}

// DetectAndApply is a convenience function that detects the configuration and
// applies it to the controller.
func DetectAndApply(ctrl Controller, image []byte) Config {
	cfg := Detect(image)
	Apply(ctrl, cfg)
	return cfg
}
