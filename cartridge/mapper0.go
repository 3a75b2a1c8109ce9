package cartridge

// mapper0 implements NROM: a fixed mapping with no bank switching.
// $8000-$BFFF is the (only, or lower) 16 KiB PRG bank; $C000-$FFFF
// mirrors it when the cartridge has a single PRG bank, or is the
// second bank when it has two. Writes to PRG-ROM are silently
// ignored; CHR space is read/write when backed by CHR-RAM and
// read-only when backed by CHR-ROM.
type mapper0 struct {
	cart *Cartridge
}

func init() {
	RegisterMapper(0, func(c *Cartridge) Mapper { return &mapper0{cart: c} })
}

func (m *mapper0) ID() uint8            { return 0 }
func (m *mapper0) Name() string         { return "NROM" }
func (m *mapper0) Mirroring() Mirroring { return m.cart.Mirroring }

func (m *mapper0) ReadPRG(addr uint16) uint8 {
	off := (addr - 0x8000) % uint16(len(m.cart.PRG))
	return m.cart.PRG[off]
}

func (m *mapper0) WritePRG(addr uint16, val uint8) {
	// NROM PRG-ROM is not writable; hardware with no bus conflict
	// logic simply ignores the write.
}

func (m *mapper0) ReadCHR(addr uint16) uint8 {
	return m.cart.CHR[addr]
}

func (m *mapper0) WriteCHR(addr uint16, val uint8) {
	if m.cart.CHRIsRAM() {
		m.cart.CHR[addr] = val
	}
}
