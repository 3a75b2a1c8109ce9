// Package bus implements the NES memory subsystem: the 16-bit CPU
// address space (internal RAM, mirrors, PPU register ports, and
// mapper-routed PRG-ROM) and the 14-bit PPU address space (pattern
// tables via the mapper, mirrored nametables, and palette RAM). The
// Bus is the sole owner of all byte storage in the core; the CPU and
// PPU hold only their own register state and call through the Bus for
// every memory access.
package bus

import "github.com/nes-core/nescore/cartridge"

const (
	ramSize        = 0x0800
	nametableSize  = 0x0800
	paletteSize    = 0x20
	oamSize        = 256
	stackPage      = 0x0100
	ppuRegBase     = 0x2000
	ppuRegMirrorTo = 0x3FFF
	ramMirrorTo    = 0x1FFF
	oamDMAReg      = 0x4014
	ioStubTo       = 0x4017
	sramTo         = 0x7FFF
)

// PPUPort is the minimal capability the Bus needs from the PPU to
// forward CPU-space register I/O ($2000-$2007 and their mirrors). It
// is satisfied by *ppu.PPU; the Bus package never imports ppu
// directly, avoiding an import cycle (ppu, in turn, depends on Bus for
// VRAM/OAM storage).
type PPUPort interface {
	ReadRegister(reg uint8) uint8
	WriteRegister(reg uint8, val uint8)
}

// Bus owns RAM, OAM, nametable VRAM and palette RAM, and routes PRG
// and CHR accesses through the cartridge's Mapper.
type Bus struct {
	ram        [ramSize]byte
	oam        [oamSize]byte
	nametables [nametableSize]byte
	palette    [paletteSize]byte

	mapper cartridge.Mapper
	ppu    PPUPort

	// openBus is the last byte that crossed the CPU data bus; it
	// is what unmapped reads return, matching real hardware's
	// capacitance-driven behavior instead of an arbitrary zero.
	openBus uint8
}

// New constructs a Bus around the cartridge's mapper. AttachPPU must
// be called before any CPU-space access to $2000-$3FFF is made.
func New(m cartridge.Mapper) *Bus {
	return &Bus{mapper: m}
}

// AttachPPU wires the PPU register port into the bus. Construction
// order is: build the Bus, build the PPU around the Bus, then
// AttachPPU so the Bus can forward CPU register I/O to it.
func (b *Bus) AttachPPU(p PPUPort) {
	b.ppu = p
}

// Read8 reads one byte from CPU address space, applying RAM/PPU
// register mirroring. Unmapped ranges return the open-bus value
// rather than panicking.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorTo:
		b.openBus = b.ram[addr&(ramSize-1)]
	case addr <= ppuRegMirrorTo:
		b.openBus = b.ppu.ReadRegister(uint8((addr - ppuRegBase) % 8))
	case addr == oamDMAReg:
		// Write-only trigger; reads fall through to open bus.
	case addr <= ioStubTo:
		// APU/input registers are out of core scope.
	case addr <= sramTo:
		// No PRG-RAM/SRAM support at mapper-0 scope.
	default:
		b.openBus = b.mapper.ReadPRG(addr)
	}
	return b.openBus
}

// Write8 writes one byte to CPU address space. Writes into ROM, or
// into the out-of-scope APU/input range (other than the OAM DMA
// trigger, which the CPU services explicitly via TriggerOAMDMA), are
// silently ignored, matching real hardware's defined (if inert)
// behavior.
func (b *Bus) Write8(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorTo:
		b.ram[addr&(ramSize-1)] = val
	case addr <= ppuRegMirrorTo:
		b.ppu.WriteRegister(uint8((addr-ppuRegBase)%8), val)
	case addr <= ioStubTo:
		// OAMDMA ($4014) is handled by the CPU calling
		// TriggerOAMDMA directly, since only the CPU knows its
		// own cycle parity for the stall-cycle calculation.
	case addr <= sramTo:
		// No PRG-RAM/SRAM support at mapper-0 scope.
	default:
		b.mapper.WritePRG(addr, val)
	}
}

// Read16 assembles a little-endian word from two consecutive bytes.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return hi<<8 | lo
}

// Read16Wrapped reproduces the 6502's indirect-addressing page-wrap
// bug: the high byte is fetched from the same page as the low byte,
// wrapping within that page instead of crossing into the next one.
// Used by indirect JMP and the (zp,X)/(zp),Y addressing modes.
func (b *Bus) Read16Wrapped(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hiAddr := (addr & 0xFF00) | ((addr + 1) & 0x00FF)
	hi := uint16(b.Read8(hiAddr))
	return hi<<8 | lo
}

// Push8 writes val to the page-1 stack at *sp and decrements *sp,
// wrapping modulo 256 with no overflow trap (hardware silently wraps).
func (b *Bus) Push8(sp *uint8, val uint8) {
	b.Write8(stackPage+uint16(*sp), val)
	*sp--
}

// Pop8 increments *sp and reads the byte now on top of the stack.
func (b *Bus) Pop8(sp *uint8) uint8 {
	*sp++
	return b.Read8(stackPage + uint16(*sp))
}

// Push16 pushes a 16-bit value high byte first, then low byte, the
// order JSR/BRK/interrupt entry use.
func (b *Bus) Push16(sp *uint8, val uint16) {
	b.Push8(sp, uint8(val>>8))
	b.Push8(sp, uint8(val))
}

// Pop16 pops a low byte then a high byte, the inverse of Push16.
func (b *Bus) Pop16(sp *uint8) uint16 {
	lo := uint16(b.Pop8(sp))
	hi := uint16(b.Pop8(sp))
	return hi<<8 | lo
}

// TriggerOAMDMA performs the 256-byte page copy from CPU address
// space (page<<8 through page<<8+255, through full bus translation so
// DMA can source from mirrored RAM) into OAM. It does not compute the
// CPU stall; the caller (cpu.CPU) adds 513 or 514 cycles based on its
// own cycle parity.
func (b *Bus) TriggerOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < oamSize; i++ {
		b.oam[i] = b.Read8(base + uint16(i))
	}
}

// OAMRead/OAMWrite let the PPU service OAMDATA register access against
// the Bus-owned OAM array at the PPU's own OAMADDR cursor.
func (b *Bus) OAMRead(addr uint8) uint8        { return b.oam[addr] }
func (b *Bus) OAMWrite(addr uint8, val uint8) { b.oam[addr] = val }

// PPURead8 reads a byte from the 14-bit PPU address space: pattern
// tables (via the mapper's CHR), mirrored nametables, or palette RAM.
func (b *Bus) PPURead8(addr uint16) uint8 {
	a := addr & 0x3FFF
	switch {
	case a < 0x2000:
		return b.mapper.ReadCHR(a)
	case a < 0x3F00:
		return b.nametables[b.nametableIndex(a)]
	default:
		return b.palette[b.paletteIndex(a)]
	}
}

// PPUWrite8 writes a byte to the 14-bit PPU address space.
func (b *Bus) PPUWrite8(addr uint16, val uint8) {
	a := addr & 0x3FFF
	switch {
	case a < 0x2000:
		b.mapper.WriteCHR(a, val)
	case a < 0x3F00:
		b.nametables[b.nametableIndex(a)] = val
	default:
		b.palette[b.paletteIndex(a)] = val
	}
}

// nametableIndex maps a nametable address (including its $3000-$3EFF
// mirror) onto the Bus's 2 KiB of physical nametable storage,
// according to the cartridge's mirroring mode.
func (b *Bus) nametableIndex(addr uint16) uint16 {
	a := addr
	if a >= 0x3000 {
		a -= 0x1000
	}
	a -= 0x2000

	logical := a / 0x0400
	within := a % 0x0400

	var phys uint16
	switch b.mapper.Mirroring() {
	case cartridge.Vertical:
		phys = logical % 2
	default:
		// Horizontal mirroring, and four-screen boards (which
		// this core doesn't have dedicated nametable VRAM
		// for): {0,1}->0, {2,3}->1.
		phys = logical / 2
	}

	return phys*0x0400 + within
}

// paletteIndex applies the 32-byte palette mirror, including the
// universal-background aliasing of $3F10/$3F14/$3F18/$3F1C onto
// $3F00/$3F04/$3F08/$3F0C.
func (b *Bus) paletteIndex(addr uint16) uint16 {
	a := (addr - 0x3F00) % paletteSize
	if a >= 0x10 && a%4 == 0 {
		a -= 0x10
	}
	return a
}

