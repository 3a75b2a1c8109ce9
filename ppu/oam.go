package ppu

const maxSpritesPerScanline = 8

// spriteSlot is one entry of secondary OAM, evaluated once per
// scanline from the 64-entry primary OAM: the up to 8 sprites that
// are in range for the scanline about to be drawn, with their
// pattern bytes already fetched and ready to shift out per dot.
type spriteSlot struct {
	x          uint8
	paletteIdx uint8
	behindBG   bool
	flipH      bool
	isSpriteZero bool
	patternLo  uint8
	patternHi  uint8
}

// The attribute* helpers unpack OAM byte 2 (attribute byte): palette in
// bits 0-1, priority in bit 5, horizontal/vertical flip in bits 6/7.
func attributePalette(attr uint8) uint8  { return attr & 0x03 }
func attributeBehind(attr uint8) bool    { return attr&0x20 != 0 }
func attributeFlipH(attr uint8) bool     { return attr&0x40 != 0 }
func attributeFlipV(attr uint8) bool     { return attr&0x80 != 0 }

// evaluateSprites scans the 64 primary OAM entries for the scanline
// about to be drawn (y) and fills secondary OAM with up to 8 matches,
// fetching their pattern bytes immediately (a simplification of the
// dot-by-dot hardware evaluation that produces the same visible
// result). Sets the overflow flag when more than 8 sprites qualify.
func (p *PPU) evaluateSprites(y int) {
	p.secondary = p.secondary[:0]
	spriteHeight := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		spriteHeight = 16
	}

	for i := 0; i < 64; i++ {
		base := uint8(i * 4)
		spriteY := int(p.bus.OAMRead(base)) + 1
		row := y - spriteY
		if row < 0 || row >= spriteHeight {
			continue
		}

		if len(p.secondary) >= maxSpritesPerScanline {
			p.status |= statusSpriteOverflow
			break
		}

		tileID := p.bus.OAMRead(base + 1)
		attr := p.bus.OAMRead(base + 2)
		x := p.bus.OAMRead(base + 3)

		if attributeFlipV(attr) {
			row = spriteHeight - 1 - row
		}

		var patternAddr uint16
		if spriteHeight == 16 {
			table := uint16(tileID&0x01) * 0x1000
			tile := uint16(tileID &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
			patternAddr = table + tile*16 + uint16(row)
		} else {
			table := uint16(0)
			if p.ctrl&ctrlSpritePattern != 0 {
				table = 0x1000
			}
			patternAddr = table + uint16(tileID)*16 + uint16(row)
		}

		lo := p.bus.PPURead8(patternAddr)
		hi := p.bus.PPURead8(patternAddr + 8)

		p.secondary = append(p.secondary, spriteSlot{
			x:            x,
			paletteIdx:   attributePalette(attr),
			behindBG:     attributeBehind(attr),
			flipH:        attributeFlipH(attr),
			isSpriteZero: i == 0,
			patternLo:    lo,
			patternHi:    hi,
		})
	}
}

// spritePixelAt returns the sprite composited at screen column x for
// the scanline secondary OAM was evaluated for: its 2-bit color
// index, its palette, whether it renders behind the background, and
// whether sprite 0 produced it (for sprite-0-hit detection). ok is
// false when no sprite covers that column with a non-transparent
// pixel.
func (p *PPU) spritePixelAt(x int) (colorIdx, palette uint8, behind, isZero, ok bool) {
	for _, s := range p.secondary {
		offset := x - int(s.x)
		if offset < 0 || offset > 7 {
			continue
		}
		bit := offset
		if !s.flipH {
			bit = 7 - offset
		}
		lo := (s.patternLo >> uint(bit)) & 1
		hi := (s.patternHi >> uint(bit)) & 1
		idx := hi<<1 | lo
		if idx == 0 {
			continue
		}
		return idx, s.paletteIdx, s.behindBG, s.isSpriteZero, true
	}
	return 0, 0, false, false, false
}
