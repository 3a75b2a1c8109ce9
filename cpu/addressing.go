package cpu

type addressingMode uint8

const (
	modeImplied addressingMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// operandAddress computes the effective address for mode, advancing
// PC past whatever operand bytes that mode consumes. It must not be
// called for modeImplied or modeAccumulator, which take no operand.
func (c *CPU) operandAddress(mode addressingMode) (addr uint16, crossed bool) {
	switch mode {
	case modeImmediate:
		addr = c.PC
		c.PC++
	case modeZeroPage:
		addr = uint16(c.bus.Read8(c.PC))
		c.PC++
	case modeZeroPageX:
		addr = uint16(c.bus.Read8(c.PC) + c.X)
		c.PC++
	case modeZeroPageY:
		addr = uint16(c.bus.Read8(c.PC) + c.Y)
		c.PC++
	case modeAbsolute:
		addr = c.bus.Read16(c.PC)
		c.PC += 2
	case modeAbsoluteX:
		base := c.bus.Read16(c.PC)
		addr = base + uint16(c.X)
		crossed = pageCrossed(base, addr)
		c.PC += 2
	case modeAbsoluteY:
		base := c.bus.Read16(c.PC)
		addr = base + uint16(c.Y)
		crossed = pageCrossed(base, addr)
		c.PC += 2
	case modeIndirect:
		ptr := c.bus.Read16(c.PC)
		addr = c.bus.Read16Wrapped(ptr)
		c.PC += 2
	case modeIndirectX:
		zp := c.bus.Read8(c.PC) + c.X
		addr = c.bus.Read16Wrapped(uint16(zp))
		c.PC++
	case modeIndirectY:
		zp := c.bus.Read8(c.PC)
		base := c.bus.Read16Wrapped(uint16(zp))
		addr = base + uint16(c.Y)
		crossed = pageCrossed(base, addr)
		c.PC++
	case modeRelative:
		off := int8(c.bus.Read8(c.PC))
		c.PC++
		addr = uint16(int32(c.PC) + int32(off))
	}
	return addr, crossed
}

// readOperand fetches the byte an addressing mode names, reporting 1
// extra cycle if resolving it crossed a page (the bonus only read-only
// instructions actually charge; stores and read-modify-write
// instructions ignore the second return value).
func (c *CPU) readOperand(mode addressingMode) (uint8, int) {
	addr, crossed := c.operandAddress(mode)
	extra := 0
	if crossed {
		extra = 1
	}
	return c.bus.Read8(addr), extra
}
