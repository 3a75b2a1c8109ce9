// Package ppu implements the NES picture processing unit: the
// 341-dot by 262-scanline state machine, the background shift-
// register fetch pipeline, sprite evaluation and sprite-0 hit, and
// the loopy v/t/x/w scroll registers. It owns only its own register
// and pipeline state; all VRAM, palette and OAM storage lives behind
// the Bus it is constructed with.
package ppu

const (
	screenWidth  = 256
	screenHeight = 240
)

// Bus is the memory capability the PPU needs: the 14-bit PPU address
// space (pattern tables, nametables, palette RAM) and the OAM byte
// array. Satisfied by *bus.Bus.
type Bus interface {
	PPURead8(addr uint16) uint8
	PPUWrite8(addr uint16, val uint8)
	OAMRead(addr uint8) uint8
	OAMWrite(addr uint8, val uint8)
}

// PPU is the NES's picture processing unit.
type PPU struct {
	bus Bus

	ctrl   uint8
	mask   uint8
	status uint8

	v, t loopy
	x    uint8 // fine X scroll, 3 bits
	w    uint8 // write-toggle latch, 1 bit

	oamAddr     uint8
	readBuffer  uint8
	lastWritten uint8 // open-bus value for write-only register reads

	scanline int // -1 (pre-render) through 260
	dot      int // 0 through 340
	frameOdd bool

	bgPatternLo, bgPatternHi uint16
	bgAttrLo, bgAttrHi       uint16

	secondary []spriteSlot

	nmiPending bool
	frameReady bool
	frame      [screenWidth * screenHeight * 3]uint8
}

// New constructs a PPU around bus, starting on the pre-render line as
// real hardware does at power-on.
func New(bus Bus) *PPU {
	return &PPU{
		bus:      bus,
		scanline: -1,
	}
}

// Reset returns the PPU to its power-on scanline/dot position without
// touching the Bus-owned VRAM/OAM it renders from.
func (p *PPU) Reset() {
	p.scanline = -1
	p.dot = 0
	p.frameOdd = false
	p.ctrl = 0
	p.mask = 0
	p.w = 0
	p.nmiPending = false
}

// PollNMI reports whether the PPU has latched an NMI since the last
// call, clearing the latch. nescore's clock-coupling loop calls this
// once per PPU tick to feed cpu.RequestNMI.
func (p *PPU) PollNMI() bool {
	if p.nmiPending {
		p.nmiPending = false
		return true
	}
	return false
}

// ConsumeFrame returns the completed framebuffer (tightly packed RGB,
// row-major, screenWidth x screenHeight) and clears the ready flag. ok
// is false if no frame has completed since the last call.
func (p *PPU) ConsumeFrame() (frame []uint8, ok bool) {
	if !p.frameReady {
		return nil, false
	}
	p.frameReady = false
	return p.frame[:], true
}

// Resolution reports the framebuffer's pixel dimensions.
func (p *PPU) Resolution() (width, height int) {
	return screenWidth, screenHeight
}

// Tick advances the PPU by exactly one dot.
func (p *PPU) Tick() {
	if p.scanline == -1 && p.dot == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}
	if p.scanline == 241 && p.dot == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlGenerateNMI != 0 {
			p.nmiPending = true
		}
		p.frameReady = true
	}

	dot := p.dot
	visibleScanline := p.scanline >= 0 && p.scanline < screenHeight
	prerenderOrVisible := p.scanline >= -1 && p.scanline < screenHeight
	renderingEnabled := p.mask&(maskShowBG|maskShowSprites) != 0

	if visibleScanline && dot >= 1 && dot <= screenWidth {
		p.drawPixel()
	}

	if renderingEnabled && prerenderOrVisible {
		inFetchRange := (dot >= 1 && dot <= 256) || (dot >= 321 && dot <= 336)
		if inFetchRange {
			p.shiftBackground()
			if dot%8 == 0 {
				p.fetchTileAndReload()
			}
		}
		if dot == 256 {
			p.v.incrementFineY()
		}
		if dot == 257 {
			p.v.copyHorizontalBits(&p.t)
			if p.scanline < screenHeight {
				p.evaluateSprites(p.scanline + 1)
			}
		}
		if p.scanline == -1 && dot >= 280 && dot <= 304 {
			p.v.copyVerticalBits(&p.t)
		}
	}

	p.advanceDot()
}

func (p *PPU) advanceDot() {
	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameOdd = !p.frameOdd
			if p.frameOdd && p.mask&(maskShowBG|maskShowSprites) != 0 {
				// NTSC pre-render line is one dot short on odd
				// frames when rendering is enabled.
				p.dot = 1
			}
		}
	}
}

// fetchTileAndReload performs the background tile-id, attribute and
// pattern-byte fetches for the tile at the current v, reloads the low
// byte of each shift register from them, and advances v's coarse X -
// the dot-8-boundary operation, consolidated into a single step as a
// simplification of the hardware's two-cycle-per-byte timing.
func (p *PPU) fetchTileAndReload() {
	tileID := p.bus.PPURead8(p.v.ntBaseAddr())
	attrByte := p.bus.PPURead8(p.v.attrAddr())

	shift := ((p.v.coarseY() & 0x02) << 1) | (p.v.coarseX() & 0x02)
	attrBits := (attrByte >> shift) & 0x03

	table := uint16(0)
	if p.ctrl&ctrlBGPattern != 0 {
		table = 0x1000
	}
	patternAddr := table + uint16(tileID)*16 + p.v.fineY()
	lo := p.bus.PPURead8(patternAddr)
	hi := p.bus.PPURead8(patternAddr + 8)

	p.bgPatternLo = (p.bgPatternLo &^ 0x00FF) | uint16(lo)
	p.bgPatternHi = (p.bgPatternHi &^ 0x00FF) | uint16(hi)

	var loFill, hiFill uint16
	if attrBits&0x01 != 0 {
		loFill = 0x00FF
	}
	if attrBits&0x02 != 0 {
		hiFill = 0x00FF
	}
	p.bgAttrLo = (p.bgAttrLo &^ 0x00FF) | loFill
	p.bgAttrHi = (p.bgAttrHi &^ 0x00FF) | hiFill

	p.v.incrementCoarseX()
}

func (p *PPU) shiftBackground() {
	p.bgPatternLo <<= 1
	p.bgPatternHi <<= 1
	p.bgAttrLo <<= 1
	p.bgAttrHi <<= 1
}

func (p *PPU) backgroundPixel() (colorIdx, palette uint8) {
	bit := uint(15 - p.x)
	lo := (p.bgPatternLo >> bit) & 1
	hi := (p.bgPatternHi >> bit) & 1
	colorIdx = uint8(hi<<1 | lo)

	aLo := (p.bgAttrLo >> bit) & 1
	aHi := (p.bgAttrHi >> bit) & 1
	palette = uint8(aHi<<1 | aLo)
	return colorIdx, palette
}

// drawPixel composites the background and sprite pixel at the
// current dot/scanline, applies sprite-0 hit detection, and writes
// the resolved RGB triple into the framebuffer.
func (p *PPU) drawPixel() {
	x := p.dot - 1
	y := p.scanline

	bgColorIdx, bgPalette := p.backgroundPixel()
	if p.mask&maskShowBG == 0 || (x < 8 && p.mask&maskShowBGLeft == 0) {
		bgColorIdx = 0
	}

	spriteIdx, spritePalette, behind, isZero, spriteOK := p.spritePixelAt(x)
	if p.mask&maskShowSprites == 0 || (x < 8 && p.mask&maskShowSpritesLeft == 0) {
		spriteOK = false
	}

	var finalIdx, finalPalette uint8
	var isSprite bool
	switch {
	case bgColorIdx == 0 && !spriteOK:
		// backdrop
	case bgColorIdx == 0 && spriteOK:
		finalIdx, finalPalette, isSprite = spriteIdx, spritePalette, true
	case bgColorIdx != 0 && !spriteOK:
		finalIdx, finalPalette = bgColorIdx, bgPalette
	default:
		if isZero && x != 255 {
			p.status |= statusSprite0Hit
		}
		if behind {
			finalIdx, finalPalette = bgColorIdx, bgPalette
		} else {
			finalIdx, finalPalette, isSprite = spriteIdx, spritePalette, true
		}
	}

	paletteAddr := uint16(0x3F00)
	if finalIdx != 0 {
		if isSprite {
			paletteAddr += 0x10
		}
		paletteAddr += uint16(finalPalette)*4 + uint16(finalIdx)
	}

	colorIdx := p.bus.PPURead8(paletteAddr) & 0x3F
	rgb := systemPalette[colorIdx]
	off := (y*screenWidth + x) * 3
	p.frame[off] = rgb[0]
	p.frame[off+1] = rgb[1]
	p.frame[off+2] = rgb[2]
}
