package ppu

import "testing"

// fakeBus is a flat PPU address space plus a 256-byte OAM, enough to
// drive the PPU through register and timing tests without a real
// cartridge/mapper.
type fakeBus struct {
	mem [0x4000]uint8
	oam [256]uint8
}

func (b *fakeBus) PPURead8(addr uint16) uint8       { return b.mem[addr&0x3FFF] }
func (b *fakeBus) PPUWrite8(addr uint16, val uint8) { b.mem[addr&0x3FFF] = val }
func (b *fakeBus) OAMRead(addr uint8) uint8         { return b.oam[addr] }
func (b *fakeBus) OAMWrite(addr uint8, val uint8)   { b.oam[addr] = val }

func TestLoopyCoarseXIncrementWrapsAndFlipsNametable(t *testing.T) {
	var l loopy
	l.setCoarseX(31)
	l.incrementCoarseX()
	if l.coarseX() != 0 {
		t.Errorf("coarseX = %d, want 0", l.coarseX())
	}
	if l.data&0x0400 == 0 {
		t.Errorf("horizontal nametable bit not flipped on coarse X wrap")
	}
}

func TestLoopyFineYIncrementRolloverAt30(t *testing.T) {
	var l loopy
	l.setFineY(7)
	l.setCoarseY(29)
	l.incrementFineY()
	if l.fineY() != 0 || l.coarseY() != 0 {
		t.Errorf("fineY=%d coarseY=%d, want 0,0", l.fineY(), l.coarseY())
	}
	if l.data&0x0800 == 0 {
		t.Errorf("vertical nametable bit not flipped on coarse Y rollover at 29->0")
	}
}

func TestLoopyFineYIncrementRolloverAt31NoFlip(t *testing.T) {
	var l loopy
	l.setFineY(7)
	l.setCoarseY(31)
	before := l.data & 0x0800
	l.incrementFineY()
	if l.coarseY() != 0 {
		t.Errorf("coarseY = %d, want 0", l.coarseY())
	}
	if l.data&0x0800 != before {
		t.Errorf("vertical nametable bit flipped on coarse Y==31 rollover, must not")
	}
}

func TestPPUADDRWriteSetsV(t *testing.T) {
	p := New(&fakeBus{})
	p.WriteRegister(regPPUADDR, 0x21)
	p.WriteRegister(regPPUADDR, 0x08)
	if p.v.data != 0x2108 {
		t.Errorf("v = %#04x, want 0x2108", p.v.data)
	}
}

func TestPPUDATAReadIsBufferedExceptPalette(t *testing.T) {
	b := &fakeBus{}
	b.mem[0x2108] = 0x42
	p := New(b)
	p.WriteRegister(regPPUADDR, 0x21)
	p.WriteRegister(regPPUADDR, 0x08)

	first := p.ReadRegister(regPPUDATA)
	if first != 0 {
		t.Errorf("first buffered read = %#02x, want 0 (stale buffer)", first)
	}
	second := p.ReadRegister(regPPUDATA)
	if second != 0x42 {
		t.Errorf("second read = %#02x, want 0x42", second)
	}

	b.mem[0x3F01] = 0x2A
	p.WriteRegister(regPPUADDR, 0x3F)
	p.WriteRegister(regPPUADDR, 0x01)
	if got := p.ReadRegister(regPPUDATA); got != 0x2A {
		t.Errorf("palette read = %#02x, want 0x2A (not buffered)", got)
	}
}

func TestPPUSTATUSReadClearsVBlankAndWriteLatch(t *testing.T) {
	p := New(&fakeBus{})
	p.status |= statusVBlank
	p.w = 1

	got := p.ReadRegister(regPPUSTATUS)
	if got&statusVBlank == 0 {
		t.Errorf("PPUSTATUS read should still report vblank as set in its return value")
	}
	if p.status&statusVBlank != 0 {
		t.Errorf("vblank flag not cleared after PPUSTATUS read")
	}
	if p.w != 0 {
		t.Errorf("write latch not cleared after PPUSTATUS read")
	}
}

func TestVBlankSetAtScanline241Dot1AndNMIFires(t *testing.T) {
	p := New(&fakeBus{})
	p.WriteRegister(regPPUCTRL, ctrlGenerateNMI)

	p.scanline = 241
	p.dot = 1
	p.Tick() // Tick executes the current (scanline,dot) position

	if p.status&statusVBlank == 0 {
		t.Errorf("vblank flag not set at scanline 241 dot 1")
	}
	if !p.PollNMI() {
		t.Errorf("NMI not latched when PPUCTRL NMI-enable was set at vblank start")
	}
}

func TestVBlankClearedAtPrerenderDot1(t *testing.T) {
	p := New(&fakeBus{})
	p.status |= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	p.scanline = -1
	p.dot = 1
	p.Tick()

	if p.status&(statusVBlank|statusSprite0Hit|statusSpriteOverflow) != 0 {
		t.Errorf("status = %#02x, want vblank/sprite0/overflow all clear at pre-render dot 1", p.status)
	}
}

func TestFrameCompletesAfterFullScan(t *testing.T) {
	p := New(&fakeBus{})
	ticks := 0
	_, ready := p.ConsumeFrame()
	if ready {
		t.Fatalf("frame ready before any ticks")
	}

	for {
		p.Tick()
		ticks++
		if _, ready := p.ConsumeFrame(); ready {
			break
		}
		if ticks > 341*262+10 {
			t.Fatalf("frame never completed within one scan's worth of ticks")
		}
	}
}

func TestOAMDATARegisterRoutesThroughBus(t *testing.T) {
	b := &fakeBus{}
	p := New(b)
	p.WriteRegister(regOAMADDR, 0x10)
	p.WriteRegister(regOAMDATA, 0x99)

	if b.oam[0x10] != 0x99 {
		t.Errorf("OAM[0x10] = %#02x, want 0x99", b.oam[0x10])
	}
	if p.oamAddr != 0x11 {
		t.Errorf("OAMADDR after write = %#02x, want 0x11 (auto-increment)", p.oamAddr)
	}
}
