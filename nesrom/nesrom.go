// Package nesrom loads the iNES (and NES 2.0 header-compatible) ROM
// format into a cartridge.Cartridge: https://www.nesdev.org/wiki/INES
package nesrom

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nes-core/nescore/cartridge"
)

const (
	headerSize   = 16
	trainerSize  = 512
	prgBlockSize = cartridge.PRGBlockSize
	chrBlockSize = cartridge.CHRBlockSize
)

// flags6 bits.
const (
	flag6Mirroring         = 1 << 0
	flag6BatteryBackedSRAM = 1 << 1
	flag6Trainer           = 1 << 2
	flag6FourScreen        = 1 << 3
)

// ErrNotINES is returned when the file doesn't start with the iNES
// magic bytes "NES\x1A".
var ErrNotINES = errors.New("not an iNES file")

type header struct {
	prgSize uint8
	chrSize uint8
	flags6  uint8
	flags7  uint8
}

func parseHeader(b [headerSize]byte) (*header, error) {
	if string(b[0:4]) != "NES\x1A" {
		return nil, ErrNotINES
	}
	return &header{
		prgSize: b[4],
		chrSize: b[5],
		flags6:  b[6],
		flags7:  b[7],
	}, nil
}

func (h *header) mapperNum() uint8 {
	return (h.flags7 & 0xF0) | (h.flags6 >> 4)
}

func (h *header) mirroring() cartridge.Mirroring {
	if h.flags6&flag6FourScreen != 0 {
		return cartridge.FourScreen
	}
	if h.flags6&flag6Mirroring != 0 {
		return cartridge.Vertical
	}
	return cartridge.Horizontal
}

func (h *header) hasTrainer() bool {
	return h.flags6&flag6Trainer != 0
}

// Load reads an iNES file from path and builds a Cartridge from it.
func Load(path string) (*cartridge.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nesrom: opening %q: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (*cartridge.Cartridge, error) {
	var hb [headerSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return nil, fmt.Errorf("nesrom: reading header: %w", err)
	}
	h, err := parseHeader(hb)
	if err != nil {
		return nil, err
	}

	if h.hasTrainer() {
		var trainer [trainerSize]byte
		if _, err := io.ReadFull(r, trainer[:]); err != nil {
			return nil, fmt.Errorf("nesrom: reading trainer: %w", err)
		}
	}

	prg := make([]byte, prgBlockSize*int(h.prgSize))
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("nesrom: reading PRG-ROM: %w", err)
	}

	var chr []byte
	if h.chrSize > 0 {
		chr = make([]byte, chrBlockSize*int(h.chrSize))
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("nesrom: reading CHR-ROM: %w", err)
		}
	}

	return cartridge.New(prg, chr, h.mapperNum(), h.mirroring())
}
