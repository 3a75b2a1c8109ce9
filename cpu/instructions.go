package cpu

// Every exec function has the shape func(*CPU, addressingMode) int,
// returning extra cycles earned beyond the opcode table's base count
// (a page-cross bonus, or a taken-branch bonus).

func (c *CPU) lda(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.A = v
	c.setZN(v)
	return extra
}

func (c *CPU) ldx(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.X = v
	c.setZN(v)
	return extra
}

func (c *CPU) ldy(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.Y = v
	c.setZN(v)
	return extra
}

// writeByte writes val to addr, diverting writes to $4014 into the
// OAM DMA trigger instead of the bus. Real hardware latches DMA off
// the address appearing on the bus, not off which opcode put it
// there, so every store instruction routes through this rather than
// just STA.
func (c *CPU) writeByte(addr uint16, val uint8) {
	if addr == 0x4014 {
		c.writeOAMDMA(val)
		return
	}
	c.bus.Write8(addr, val)
}

func (c *CPU) sta(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	c.writeByte(addr, c.A)
	return 0
}

func (c *CPU) stx(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	c.writeByte(addr, c.X)
	return 0
}

func (c *CPU) sty(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	c.writeByte(addr, c.Y)
	return 0
}

func (c *CPU) tax(addressingMode) int { c.X = c.A; c.setZN(c.X); return 0 }
func (c *CPU) tay(addressingMode) int { c.Y = c.A; c.setZN(c.Y); return 0 }
func (c *CPU) txa(addressingMode) int { c.A = c.X; c.setZN(c.A); return 0 }
func (c *CPU) tya(addressingMode) int { c.A = c.Y; c.setZN(c.A); return 0 }
func (c *CPU) tsx(addressingMode) int { c.X = c.S; c.setZN(c.X); return 0 }
func (c *CPU) txs(addressingMode) int { c.S = c.X; return 0 }

func (c *CPU) pha(addressingMode) int { c.bus.Push8(&c.S, c.A); return 0 }
func (c *CPU) pla(addressingMode) int {
	c.A = c.bus.Pop8(&c.S)
	c.setZN(c.A)
	return 0
}
func (c *CPU) php(addressingMode) int {
	c.bus.Push8(&c.S, c.P|FlagB|FlagU)
	return 0
}
func (c *CPU) plp(addressingMode) int {
	v := c.bus.Pop8(&c.S)
	c.P = (v &^ FlagB) | FlagU
	return 0
}

// addWithCarry implements ADC; SBC calls it with the operand bit-
// complemented, which is exactly how the hardware computes both from
// the same adder.
func (c *CPU) addWithCarry(operand uint8) {
	a := c.A
	carryIn := uint16(0)
	if c.P&FlagC != 0 {
		carryIn = 1
	}
	sum := uint16(a) + uint16(operand) + carryIn
	result := uint8(sum)

	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (^(a^operand)&(a^result))&0x80 != 0)
	c.A = result
	c.setZN(result)
}

func (c *CPU) adc(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.addWithCarry(v)
	return extra
}

func (c *CPU) sbc(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.addWithCarry(^v)
	return extra
}

func (c *CPU) and(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.A &= v
	c.setZN(c.A)
	return extra
}

func (c *CPU) ora(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.A |= v
	c.setZN(c.A)
	return extra
}

func (c *CPU) eor(mode addressingMode) int {
	v, extra := c.readOperand(mode)
	c.A ^= v
	c.setZN(c.A)
	return extra
}

func (c *CPU) bit(mode addressingMode) int {
	v, _ := c.readOperand(mode)
	c.setFlag(FlagZ, c.A&v == 0)
	c.setFlag(FlagV, v&0x40 != 0)
	c.setFlag(FlagN, v&0x80 != 0)
	return 0
}

func (c *CPU) compare(reg uint8, mode addressingMode) int {
	v, extra := c.readOperand(mode)
	result := reg - v
	c.setFlag(FlagC, reg >= v)
	c.setZN(result)
	return extra
}

func (c *CPU) cmp(mode addressingMode) int { return c.compare(c.A, mode) }
func (c *CPU) cpx(mode addressingMode) int { return c.compare(c.X, mode) }
func (c *CPU) cpy(mode addressingMode) int { return c.compare(c.Y, mode) }

func (c *CPU) inc(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	v := c.bus.Read8(addr) + 1
	c.bus.Write8(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) dec(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	v := c.bus.Read8(addr) - 1
	c.bus.Write8(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) inx(addressingMode) int { c.X++; c.setZN(c.X); return 0 }
func (c *CPU) iny(addressingMode) int { c.Y++; c.setZN(c.Y); return 0 }
func (c *CPU) dex(addressingMode) int { c.X--; c.setZN(c.X); return 0 }
func (c *CPU) dey(addressingMode) int { c.Y--; c.setZN(c.Y); return 0 }

func (c *CPU) asl(mode addressingMode) int {
	var old, result uint8
	if mode == modeAccumulator {
		old = c.A
		result = old << 1
		c.A = result
	} else {
		addr, _ := c.operandAddress(mode)
		old = c.bus.Read8(addr)
		result = old << 1
		c.bus.Write8(addr, result)
	}
	c.setFlag(FlagC, old&0x80 != 0)
	c.setZN(result)
	return 0
}

func (c *CPU) lsr(mode addressingMode) int {
	var old, result uint8
	if mode == modeAccumulator {
		old = c.A
		result = old >> 1
		c.A = result
	} else {
		addr, _ := c.operandAddress(mode)
		old = c.bus.Read8(addr)
		result = old >> 1
		c.bus.Write8(addr, result)
	}
	c.setFlag(FlagC, old&0x01 != 0)
	c.setZN(result)
	return 0
}

func (c *CPU) rol(mode addressingMode) int {
	var old, result uint8
	carryIn := uint8(0)
	if c.P&FlagC != 0 {
		carryIn = 1
	}
	if mode == modeAccumulator {
		old = c.A
		result = old<<1 | carryIn
		c.A = result
	} else {
		addr, _ := c.operandAddress(mode)
		old = c.bus.Read8(addr)
		result = old<<1 | carryIn
		c.bus.Write8(addr, result)
	}
	c.setFlag(FlagC, old&0x80 != 0)
	c.setZN(result)
	return 0
}

func (c *CPU) ror(mode addressingMode) int {
	var old, result uint8
	carryIn := uint8(0)
	if c.P&FlagC != 0 {
		carryIn = 0x80
	}
	if mode == modeAccumulator {
		old = c.A
		result = old>>1 | carryIn
		c.A = result
	} else {
		addr, _ := c.operandAddress(mode)
		old = c.bus.Read8(addr)
		result = old>>1 | carryIn
		c.bus.Write8(addr, result)
	}
	c.setFlag(FlagC, old&0x01 != 0)
	c.setZN(result)
	return 0
}

// branch is the shared shape of all eight conditional branches: it
// always consumes the relative operand (advancing PC past it), and
// only actually redirects PC when cond holds.
func (c *CPU) branch(cond bool) int {
	target, _ := c.operandAddress(modeRelative)
	if !cond {
		return 0
	}
	next := c.PC
	c.PC = target
	if pageCrossed(next, target) {
		return 2
	}
	return 1
}

func (c *CPU) bcc(addressingMode) int { return c.branch(c.P&FlagC == 0) }
func (c *CPU) bcs(addressingMode) int { return c.branch(c.P&FlagC != 0) }
func (c *CPU) bne(addressingMode) int { return c.branch(c.P&FlagZ == 0) }
func (c *CPU) beq(addressingMode) int { return c.branch(c.P&FlagZ != 0) }
func (c *CPU) bpl(addressingMode) int { return c.branch(c.P&FlagN == 0) }
func (c *CPU) bmi(addressingMode) int { return c.branch(c.P&FlagN != 0) }
func (c *CPU) bvc(addressingMode) int { return c.branch(c.P&FlagV == 0) }
func (c *CPU) bvs(addressingMode) int { return c.branch(c.P&FlagV != 0) }

func (c *CPU) jmp(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	c.PC = addr
	return 0
}

func (c *CPU) jsr(mode addressingMode) int {
	addr, _ := c.operandAddress(mode)
	c.bus.Push16(&c.S, c.PC-1)
	c.PC = addr
	return 0
}

func (c *CPU) rts(addressingMode) int {
	addr := c.bus.Pop16(&c.S)
	c.PC = addr + 1
	return 0
}

func (c *CPU) brk(addressingMode) int {
	c.PC++ // skip the signature byte after the opcode
	c.bus.Push16(&c.S, c.PC)
	c.bus.Push8(&c.S, c.P|FlagB|FlagU)
	c.setFlag(FlagI, true)
	c.PC = c.bus.Read16(vectorIRQ)
	return 0
}

func (c *CPU) rti(addressingMode) int {
	v := c.bus.Pop8(&c.S)
	c.P = (v &^ FlagB) | FlagU
	c.PC = c.bus.Pop16(&c.S)
	return 0
}

func (c *CPU) clc(addressingMode) int { c.setFlag(FlagC, false); return 0 }
func (c *CPU) sec(addressingMode) int { c.setFlag(FlagC, true); return 0 }
func (c *CPU) cli(addressingMode) int { c.setFlag(FlagI, false); return 0 }
func (c *CPU) sei(addressingMode) int { c.setFlag(FlagI, true); return 0 }
func (c *CPU) clv(addressingMode) int { c.setFlag(FlagV, false); return 0 }
func (c *CPU) cld(addressingMode) int { c.setFlag(FlagD, false); return 0 }
func (c *CPU) sed(addressingMode) int { c.setFlag(FlagD, true); return 0 }

func (c *CPU) nop(addressingMode) int { return 0 }
